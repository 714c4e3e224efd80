package bmi

import (
	"math"
	"strconv"
	"strings"
)

// Form holds the state of one calculator interaction: the raw text of both
// inputs and the last result, if any.
type Form struct {
	Weight string
	Height string
	Result *Result
}

// CanCalculate mirrors the Calculate button: enabled once both fields have text.
func (f *Form) CanCalculate() bool {
	return strings.TrimSpace(f.Weight) != "" && strings.TrimSpace(f.Height) != ""
}

// Calculate computes a new result from the inputs. When they do not parse to
// positive numbers nothing runs and the previous result is kept.
func (f *Form) Calculate() bool {
	if !f.CanCalculate() {
		return false
	}

	weight, ok := ParseInput(f.Weight)
	if !ok {
		return false
	}
	height, ok := ParseInput(f.Height)
	if !ok {
		return false
	}

	res, ok := Compute(weight, height)
	if !ok {
		return false
	}

	f.Result = &res
	return true
}

// Reset clears both inputs and the result.
func (f *Form) Reset() {
	f.Weight = ""
	f.Height = ""
	f.Result = nil
}

// HasResult reports whether a result is currently displayed.
func (f *Form) HasResult() bool {
	return f.Result != nil
}

// ParseInput parses a decimal text field, accepting a comma as the decimal
// separator. Only finite positive values are accepted.
func ParseInput(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
