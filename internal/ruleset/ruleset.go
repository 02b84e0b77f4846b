package ruleset

// Context identifies the fixture a ruleset is asked to adjust.
type Context struct {
	Home string
	Away string
}

// Adjustment modifies the outcome model for one fixture.
// DiffShift is added to the rating differential; the scales multiply
// base_draw_rate and sigmoid_sharpness respectively.
type Adjustment struct {
	DiffShift      float64
	DrawScale      float64
	SharpnessScale float64
}

// Identity leaves the outcome model unchanged.
func Identity() Adjustment {
	return Adjustment{DiffShift: 0, DrawScale: 1, SharpnessScale: 1}
}

type Ruleset interface {
	Name() string
	Adjust(ctx Context) Adjustment
}

// Standard applies no adjustment.
type Standard struct{}

func (Standard) Name() string { return NameStandard }

func (Standard) Adjust(Context) Adjustment { return Identity() }
