package teams

import (
	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
	domainteams "github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
)

// Catalogs exposes the current catalog snapshot.
type Catalogs interface {
	Current() *catalog.Catalog
}

// Service answers team queries against the current catalog.
type Service struct {
	catalogs Catalogs
}

// NewService constructs a Service over the provided catalog holder.
func NewService(catalogs Catalogs) *Service {
	return &Service{catalogs: catalogs}
}

// Teams returns every team in catalog order.
func (s *Service) Teams() []domainteams.Team {
	return s.catalogs.Current().Teams()
}

// Count returns the catalog size.
func (s *Service) Count() int {
	return s.catalogs.Current().Len()
}

// Search returns up to limit teams whose name contains query.
func (s *Service) Search(query string, limit int) []domainteams.Team {
	return s.catalogs.Current().Search(query, limit)
}

// TeamByName resolves an exact, case-insensitive name.
func (s *Service) TeamByName(name string) (domainteams.Team, bool) {
	return s.catalogs.Current().Lookup(name)
}
