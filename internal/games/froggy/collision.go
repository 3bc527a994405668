package froggy

import "math"

// Outcome is the result of a collision check.
type Outcome uint8

const (
	Survived Outcome = iota
	Carried
	Died
)

func (o Outcome) String() string {
	switch o {
	case Survived:
		return "survived"
	case Carried:
		return "carried"
	case Died:
		return "died"
	default:
		return "unknown"
	}
}

// Resolve checks the player against the lane it stands on. It must run
// after the lane has ticked. A carried player is moved with the lane.
func Resolve(l *Lane, p *Player) Outcome {
	if math.Abs(p.X) > p.cfg.Bound {
		return Died
	}

	switch {
	case !l.Kind.Hazard():
		return Survived

	case l.Kind.Carries():
		for _, e := range l.Entities {
			if e.Span().Contains(p.X) {
				p.Carry(l.Speed * float64(l.Direction))
				return Carried
			}
		}
		return Died

	default:
		// Touching edges count as contact. The first clause is the only
		// one that catches the frog's right edge sitting on a car's left.
		ps := p.Span()
		for _, e := range l.Entities {
			es := e.Span()
			if ps.Hi >= es.Lo && ps.Hi < es.Hi {
				return Died
			}
			if ps.Lo <= es.Hi && ps.Hi > es.Lo {
				return Died
			}
		}
		return Survived
	}
}
