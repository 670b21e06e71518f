package daily

import (
	"errors"

	"github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
	"github.com/EmersonKing1/Teamdle-Project/internal/timeutil"
)

// ErrEmptyCatalog is returned when there is nothing to select from.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Seed returns year*10000 + month*100 + day.
func Seed(date timeutil.Date) int {
	return date.Year*10000 + int(date.Month)*100 + date.Day
}

// SelectTarget picks catalog[Seed(date) mod len(catalog)].
// The result is stable only while the catalog's order and length are unchanged;
// adding or removing teams shifts the target for every later date.
func SelectTarget(catalog []teams.Team, date timeutil.Date) (teams.Team, error) {
	if len(catalog) == 0 {
		return teams.Team{}, ErrEmptyCatalog
	}
	idx := Seed(date) % len(catalog)
	if idx < 0 {
		idx += len(catalog)
	}
	return catalog[idx], nil
}
