package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
)

// DefaultSearchLimit caps Search results when no positive limit is given.
const DefaultSearchLimit = 8

// ErrDuplicateTeam is returned when two records share a name (case-insensitively).
var ErrDuplicateTeam = errors.New("duplicate team name")

// Catalog is an immutable, ordered list of teams with name lookup.
// Order is significant: the daily target is picked by index.
type Catalog struct {
	teams []teams.Team
	index map[string]int
}

// New validates items and builds a Catalog preserving their order.
func New(items []teams.Team) (*Catalog, error) {
	c := &Catalog{
		teams: make([]teams.Team, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, t := range items {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		key := teams.NormalizeName(t.Name)
		if _, ok := c.index[key]; ok {
			return nil, fmt.Errorf("record %d: %w: %q", i, ErrDuplicateTeam, t.Name)
		}
		c.index[key] = len(c.teams)
		c.teams = append(c.teams, t)
	}
	return c, nil
}

// record mirrors the on-disk row. Pointers distinguish absent fields from zero values.
type record struct {
	Name          *string `json:"Team Name"`
	League        *string `json:"League"`
	Conference    *string `json:"Conference"`
	Division      *string `json:"Division"`
	Championships *int    `json:"Championships"`
}

func (r record) toTeam(i int) (teams.Team, error) {
	missing := func(field string) error {
		return fmt.Errorf("record %d: %w: missing %s", i, teams.ErrInvalidRecord, field)
	}
	switch {
	case r.Name == nil:
		return teams.Team{}, missing("Team Name")
	case r.League == nil:
		return teams.Team{}, missing("League")
	case r.Conference == nil:
		return teams.Team{}, missing("Conference")
	case r.Division == nil:
		return teams.Team{}, missing("Division")
	case r.Championships == nil:
		return teams.Team{}, missing("Championships")
	}
	return teams.Team{
		Name:          strings.TrimSpace(*r.Name),
		League:        strings.TrimSpace(*r.League),
		Conference:    strings.TrimSpace(*r.Conference),
		Division:      strings.TrimSpace(*r.Division),
		Championships: *r.Championships,
	}, nil
}

// Parse decodes a JSON array of team rows and builds a Catalog.
func Parse(r io.Reader) (*Catalog, error) {
	var rows []record
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	items := make([]teams.Team, 0, len(rows))
	for i, row := range rows {
		t, err := row.toTeam(i)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return New(items)
}

// Len returns the number of teams.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.teams)
}

// Teams returns a copy of the teams in catalog order.
func (c *Catalog) Teams() []teams.Team {
	if c == nil {
		return nil
	}
	out := make([]teams.Team, len(c.teams))
	copy(out, c.teams)
	return out
}

// Lookup finds a team by exact name, ignoring case and surrounding whitespace.
func (c *Catalog) Lookup(name string) (teams.Team, bool) {
	if c == nil {
		return teams.Team{}, false
	}
	i, ok := c.index[teams.NormalizeName(name)]
	if !ok {
		return teams.Team{}, false
	}
	return c.teams[i], true
}

// Search returns up to limit teams whose name contains query, in catalog order.
// A blank query matches nothing.
func (c *Catalog) Search(query string, limit int) []teams.Team {
	q := teams.NormalizeName(query)
	if c == nil || q == "" {
		return []teams.Team{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	out := make([]teams.Team, 0, limit)
	for _, t := range c.teams {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
