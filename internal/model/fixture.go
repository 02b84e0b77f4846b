package model

import "fmt"

// Fixture is an ordered (home, away) pair.
type Fixture struct {
	Home string
	Away string
}

// Match is the display label used for kickoff ordering and output rows.
func (f Fixture) Match() string {
	return fmt.Sprintf("%s vs %s", f.Home, f.Away)
}

// Validate checks that both sides exist in the snapshot.
func (f Fixture) Validate(r Ratings) error {
	if f.Home == f.Away {
		return fmt.Errorf("%w: %s plays itself", ErrInvalidInput, f.Home)
	}
	if _, err := r.Lookup(f.Home); err != nil {
		return fmt.Errorf("fixture %q: %w", f.Match(), err)
	}
	if _, err := r.Lookup(f.Away); err != nil {
		return fmt.Errorf("fixture %q: %w", f.Match(), err)
	}
	return nil
}
