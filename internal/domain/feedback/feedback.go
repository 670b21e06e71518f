package feedback

import (
	"fmt"

	"github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
)

// ChampionshipThreshold is the largest championship difference still tagged Close.
const ChampionshipThreshold = 2

// Tag classifies how close one guessed attribute is to the target.
type Tag string

const (
	Exact Tag = "EXACT"
	Close Tag = "CLOSE"
	Far   Tag = "FAR"
)

// Color returns the player-facing label for the tag.
func (t Tag) Color() string {
	switch t {
	case Exact:
		return "GREEN"
	case Close:
		return "YELLOW"
	default:
		return "GRAY"
	}
}

// Dimension indexes a Vector.
type Dimension int

const (
	League Dimension = iota
	Conference
	Division
	Championships
	Identity
)

// Dimensions lists every compared dimension in Vector order.
var Dimensions = [...]Dimension{League, Conference, Division, Championships, Identity}

func (d Dimension) String() string {
	switch d {
	case League:
		return "league"
	case Conference:
		return "conference"
	case Division:
		return "division"
	case Championships:
		return "championships"
	case Identity:
		return "team"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// Vector is the per-dimension feedback for one guess.
type Vector [5]Tag

// Tag returns the tag for dimension d.
func (v Vector) Tag(d Dimension) Tag {
	return v[d]
}

// Solved reports whether the guess named the target team.
func (v Vector) Solved() bool {
	return v[Identity] == Exact
}

// Score compares guess against target. Each dimension is classified on its own;
// only Division looks at Conference to decide Close.
func Score(guess, target teams.Team) (Vector, error) {
	if err := guess.Validate(); err != nil {
		return Vector{}, fmt.Errorf("guess: %w", err)
	}
	if err := target.Validate(); err != nil {
		return Vector{}, fmt.Errorf("target: %w", err)
	}

	var v Vector
	v[League] = exactOrFar(guess.League == target.League)
	v[Conference] = exactOrFar(guess.Conference == target.Conference)

	switch {
	case guess.Division == target.Division:
		v[Division] = Exact
	case guess.Conference == target.Conference:
		v[Division] = Close
	default:
		v[Division] = Far
	}

	v[Championships] = scoreChampionships(guess.Championships, target.Championships)
	v[Identity] = exactOrFar(guess.Name == target.Name)
	return v, nil
}

func scoreChampionships(guess, target int) Tag {
	diff := guess - target
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return Exact
	case diff <= ChampionshipThreshold:
		return Close
	default:
		return Far
	}
}

func exactOrFar(match bool) Tag {
	if match {
		return Exact
	}
	return Far
}
