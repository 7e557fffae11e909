package dataset

import "math"

// Summary describes one column for listings.
type Summary struct {
	Index   int     `json:"index" yaml:"index"`
	Name    string  `json:"name" yaml:"name"`
	Kind    string  `json:"kind" yaml:"kind"`
	Missing int     `json:"missing" yaml:"missing"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
}

// Kind is "numeric" or "categorical".
func (c Column) Kind() string {
	if c.Categorical {
		return "categorical"
	}
	return "numeric"
}

// Summarize returns a Summary per column, in header order. Min and Max skip
// missing values and are zero for a column without any.
func (t Table) Summarize() []Summary {
	out := make([]Summary, 0, len(t.Columns))
	for i, c := range t.Columns {
		s := Summary{Index: i + 1, Name: c.Name, Kind: c.Kind()}
		first := true
		for _, v := range c.Values {
			if math.IsNaN(v) {
				s.Missing++
				continue
			}
			if first {
				s.Min, s.Max = v, v
				first = false
				continue
			}
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
		out = append(out, s)
	}
	return out
}
