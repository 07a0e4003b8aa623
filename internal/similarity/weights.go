package similarity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"plagcheck/internal/services"
)

// Weights is the fusion policy applied by Combine. Components are relative;
// they are divided by their sum before use.
type Weights struct {
	Frequency    float64 `toml:"frequency" json:"frequency"`
	Cosine       float64 `toml:"cosine" json:"cosine"`
	EditDistance float64 `toml:"edit_distance" json:"edit_distance"`
}

// EqualWeights is the default policy: the arithmetic mean of the three scores.
func EqualWeights() Weights {
	return Weights{Frequency: 1, Cosine: 1, EditDistance: 1}
}

// Validate rejects negative, non-finite, or all-zero weights.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"frequency":     w.Frequency,
		"cosine":        w.Cosine,
		"edit_distance": w.EditDistance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return services.Wrap(services.ErrConfiguration, "similarity", "weights",
				fmt.Sprintf("%s weight must be a finite non-negative number, got %v", name, v), nil)
		}
	}
	if w.sum() == 0 {
		return services.Wrap(services.ErrConfiguration, "similarity", "weights",
			"at least one weight must be positive", nil)
	}
	return nil
}

// Normalized returns the weights scaled to sum to one.
func (w Weights) Normalized() Weights {
	total := w.sum()
	if total == 0 {
		return Weights{Frequency: 1.0 / 3, Cosine: 1.0 / 3, EditDistance: 1.0 / 3}
	}
	return Weights{
		Frequency:    w.Frequency / total,
		Cosine:       w.Cosine / total,
		EditDistance: w.EditDistance / total,
	}
}

func (w Weights) sum() float64 {
	return w.Frequency + w.Cosine + w.EditDistance
}

// String renders the weights in the form accepted by ParseWeights.
func (w Weights) String() string {
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return format(w.Frequency) + "," + format(w.Cosine) + "," + format(w.EditDistance)
}

// ParseWeights parses "frequency,cosine,edit_distance", e.g. "1,1,1" or
// "0.2,0.5,0.3".
func ParseWeights(value string) (Weights, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return Weights{}, services.Wrap(services.ErrConfiguration, "similarity", "parse weights",
			fmt.Sprintf("expected three comma-separated numbers, got %q", value), nil)
	}
	vals := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Weights{}, services.Wrap(services.ErrConfiguration, "similarity", "parse weights",
				fmt.Sprintf("invalid number %q", part), err)
		}
		vals[i] = v
	}
	w := Weights{Frequency: vals[0], Cosine: vals[1], EditDistance: vals[2]}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Combine fuses the three component scores with w. The result is clamped to
// [0,1].
func Combine(frequency, cosine, editDistance float64, w Weights) float64 {
	n := w.Normalized()
	return clamp(n.Frequency*frequency + n.Cosine*cosine + n.EditDistance*editDistance)
}
