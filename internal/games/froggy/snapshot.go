package froggy

// LaneSnapshot captures one lane.
type LaneSnapshot struct {
	Row       int
	Kind      LaneKind
	Speed     float64
	Direction int
	Entities  int
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	State    State
	Score    int
	World    int
	PlayerX  float64
	Streak   int
	Lanes    []LaneSnapshot // nil holes are skipped
	LiveNode int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		State:  g.state,
		Score:  g.score,
		World:  g.record.World,
		Streak: g.genState.DangerStreak,
	}
	if g.player != nil {
		s.PlayerX = g.player.X
	}
	if g.graph != nil {
		s.LiveNode = g.graph.Len()
	}
	if g.track != nil {
		for _, l := range g.track.lanes {
			if l == nil {
				continue
			}
			s.Lanes = append(s.Lanes, LaneSnapshot{
				Row:       l.Row,
				Kind:      l.Kind,
				Speed:     l.Speed,
				Direction: l.Direction,
				Entities:  len(l.Entities),
			})
		}
	}
	return s
}
