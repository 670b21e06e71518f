package server

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// shutdownTimeout, when positive, overrides the configured grace period.
var shutdownTimeout time.Duration

func (s *Server) shutdownGrace() time.Duration {
	if shutdownTimeout > 0 {
		return shutdownTimeout
	}
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 10 * time.Second
}
