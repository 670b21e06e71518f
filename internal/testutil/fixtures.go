package testutil

import (
	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
)

// SampleTeams returns a small catalog spanning leagues, conferences and divisions.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{Name: "New York Yankees", League: "MLB", Conference: "AL", Division: "AL East", Championships: 27},
		{Name: "Boston Red Sox", League: "MLB", Conference: "AL", Division: "AL East", Championships: 9},
		{Name: "Houston Astros", League: "MLB", Conference: "AL", Division: "AL West", Championships: 2},
		{Name: "New York Mets", League: "MLB", Conference: "NL", Division: "NL East", Championships: 2},
		{Name: "Boston Celtics", League: "NBA", Conference: "NBA East", Division: "NBA Atlantic", Championships: 18},
		{Name: "Los Angeles Lakers", League: "NBA", Conference: "NBA West", Division: "NBA Pacific", Championships: 17},
		{Name: "Kansas City Chiefs", League: "NFL", Conference: "AFC", Division: "AFC West", Championships: 4},
	}
}

// SampleCatalog builds a catalog from SampleTeams.
func SampleCatalog() *catalog.Catalog {
	c, err := catalog.New(SampleTeams())
	if err != nil {
		panic(err)
	}
	return c
}

// SampleHolder wraps SampleCatalog in a holder.
func SampleHolder() *catalog.Holder {
	return catalog.NewHolder(SampleCatalog())
}
