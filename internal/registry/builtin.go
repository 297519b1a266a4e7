package registry

import "github.com/vovakirdan/tui-life/internal/life"

func init() {
	for _, p := range []Preset{
		{ID: "conway", Title: "Conway's Game of Life", Rule: "B3/S23"},
		{ID: "highlife", Title: "HighLife", Rule: "B36/S23"},
		{ID: "seeds", Title: "Seeds", Rule: "B2/S"},
		{ID: "daynight", Title: "Day & Night", Rule: "B3678/S34678"},
		{ID: "lifewithoutdeath", Title: "Life without Death", Rule: "B3/S012345678"},
		{ID: "maze", Title: "Maze", Rule: "B3/S12345"},
		{ID: "replicator", Title: "Replicator", Rule: "B1357/S1357"},
		{ID: "hexlife", Title: "Hexagonal Life", Rule: "B2/S34", Topology: life.Hexagon},
		{ID: "trilife", Title: "Triangular Life", Rule: "B45/S34", Topology: life.Triangle},
	} {
		Register(p)
	}
}
