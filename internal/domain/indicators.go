package domain

// Indicator binds one output region to the fields it is derived from. Any
// input on a source field re-evaluates the indicator from all its sources.
type Indicator struct {
	Name     string
	Title    string
	OutputID string
	Sources  []string
	compute  func(vals []float64) string
}

// Evaluate reads the sources fresh from r and returns the display string.
// calculated is false when a source failed to parse or a bounded value was
// out of range, in which case display is NotCalculated.
func (ind Indicator) Evaluate(r FieldReader) (display string, calculated bool) {
	vals := make([]float64, len(ind.Sources))
	for i, id := range ind.Sources {
		v, ok := ParseNumber(r.Get(id))
		if !ok {
			return NotCalculated, false
		}
		vals[i] = v
	}
	out := ind.compute(vals)
	return out, out != NotCalculated
}

// Indicators is the binding table for the structural performance section.
// Ratio indicators divide without guarding the denominator: a parsed zero
// yields Infinity or NaN, displayed as such.
var Indicators = []Indicator{
	{
		Name:     "probability_of_failure",
		Title:    "Probability of Failure (Pf)",
		OutputID: "pf-value",
		Sources:  []string{"resistance-input", "load-input"},
		compute: func(v []float64) string {
			pf := v[1] / v[0]
			return FormatFixed(pf*100, 2) + "%"
		},
	},
	{
		Name:     "safety_factor",
		Title:    "Safety Factor (SF)",
		OutputID: "sf-value",
		Sources:  []string{"sigma-u-input", "sigma-all-input"},
		compute: func(v []float64) string {
			return FormatFixed(v[0]/v[1], 2)
		},
	},
	{
		Name:     "reserve_factor",
		Title:    "Reserve Strength Factor (R1)",
		OutputID: "r1-value",
		Sources:  []string{"load-carrying-capacity", "applied-load"},
		compute: func(v []float64) string {
			return FormatFixed(v[0]/v[1], 2)
		},
	},
	{
		Name:     "robustness",
		Title:    "Robustness (RO)",
		OutputID: "ro-value",
		Sources:  []string{"robustness-input"},
		compute:  unitInterval,
	},
	{
		Name:     "resilience",
		Title:    "Resilience (RE)",
		OutputID: "re-value",
		Sources:  []string{"resilience-input"},
		compute:  unitInterval,
	},
}

// LookupIndicator finds an indicator by name.
func LookupIndicator(name string) (Indicator, bool) {
	for _, ind := range Indicators {
		if ind.Name == name {
			return ind, true
		}
	}
	return Indicator{}, false
}

func unitInterval(v []float64) string {
	if v[0] < 0 || v[0] > 1 {
		return NotCalculated
	}
	return FormatFixed(v[0], 2)
}
