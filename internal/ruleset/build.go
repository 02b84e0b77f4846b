package ruleset

import (
	"fmt"
	"sort"
	"strings"
)

const (
	NameStandard  = "standard"
	NameEliteTier = "elite_tier"
)

var eliteParamKeys = []string{"bonus", "draw_scale", "sharpness_scale"}

// FromConfig builds a ruleset from its configured name, params and members.
// An empty name selects the standard ruleset. Unknown or non-numeric params are errors.
func FromConfig(name string, params map[string]any, members []string) (Ruleset, error) {
	switch strings.TrimSpace(name) {
	case "", NameStandard:
		if err := checkKeys(NameStandard, params, nil); err != nil {
			return nil, err
		}
		return Standard{}, nil
	case NameEliteTier:
		if err := checkKeys(NameEliteTier, params, eliteParamKeys); err != nil {
			return nil, err
		}
		def := DefaultEliteParams()
		bonus, err := numParam(params, "bonus", def.Bonus)
		if err != nil {
			return nil, err
		}
		drawScale, err := numParam(params, "draw_scale", def.DrawScale)
		if err != nil {
			return nil, err
		}
		sharpness, err := numParam(params, "sharpness_scale", def.SharpnessScale)
		if err != nil {
			return nil, err
		}
		return NewEliteTier(members, EliteParams{
			Bonus:          bonus,
			DrawScale:      drawScale,
			SharpnessScale: sharpness,
		})
	default:
		return nil, fmt.Errorf("unsupported ruleset: %q", name)
	}
}

func checkKeys(ruleset string, params map[string]any, allowed []string) error {
	var unknown []string
	for key := range params {
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%s: unknown params %v (allowed: %v)", ruleset, unknown, allowed)
}

// numParam reads an optional number; absent or null keys take def.
func numParam(m map[string]any, key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("param %s must be a number, got %T", key, v)
	}
}
