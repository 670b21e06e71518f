package teams

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is returned when a team record is missing a required field.
var ErrInvalidRecord = errors.New("invalid team record")

// Team is one catalog entry. Division is only meaningful within its Conference.
type Team struct {
	Name          string `json:"name"`
	League        string `json:"league"`
	Conference    string `json:"conference"`
	Division      string `json:"division"`
	Championships int    `json:"championships"`
}

// Validate reports ErrInvalidRecord (wrapped with the offending field) when a
// string field is blank or Championships is negative.
func (t Team) Validate() error {
	switch {
	case strings.TrimSpace(t.Name) == "":
		return fmt.Errorf("%w: missing name", ErrInvalidRecord)
	case strings.TrimSpace(t.League) == "":
		return fmt.Errorf("%w: %q missing league", ErrInvalidRecord, t.Name)
	case strings.TrimSpace(t.Conference) == "":
		return fmt.Errorf("%w: %q missing conference", ErrInvalidRecord, t.Name)
	case strings.TrimSpace(t.Division) == "":
		return fmt.Errorf("%w: %q missing division", ErrInvalidRecord, t.Name)
	case t.Championships < 0:
		return fmt.Errorf("%w: %q has negative championships (%d)", ErrInvalidRecord, t.Name, t.Championships)
	}
	return nil
}

// NormalizeName folds a name for case-insensitive lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
