package model

// Pick is the single most probable outcome of a fixture.
// Keep these values stable; they are printed by the CLI.
type Pick string

const (
	PickHome Pick = "HOME"
	PickDraw Pick = "DRAW"
	PickAway Pick = "AWAY"
)

// PickFromProbabilities returns the outcome with the highest probability.
// Ties prefer home, then draw.
func PickFromProbabilities(p Probabilities) Pick {
	switch {
	case p.Home >= p.Draw && p.Home >= p.Away:
		return PickHome
	case p.Draw >= p.Away:
		return PickDraw
	default:
		return PickAway
	}
}
