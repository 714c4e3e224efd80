package bmi

// Category is one of the four fixed BMI bands.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Band thresholds. A value equal to a threshold belongs to the higher band.
const (
	NormalThreshold     = 18.5
	OverweightThreshold = 25.0
	ObeseThreshold      = 30.0
)

// Band is one row of the reference table.
type Band struct {
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	Range       string   `json:"range"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
}

var bands = []Band{
	{
		Category:    Underweight,
		Label:       "Underweight",
		Range:       "< 18.5",
		Description: "You may need to gain weight. Consider consulting with a healthcare provider for personalized advice.",
		Color:       "blue",
	},
	{
		Category:    Normal,
		Label:       "Normal Weight",
		Range:       "18.5 - 24.9",
		Description: "Great! You have a healthy weight. Maintain your current lifestyle with balanced diet and regular exercise.",
		Color:       "green",
	},
	{
		Category:    Overweight,
		Label:       "Overweight",
		Range:       "25.0 - 29.9",
		Description: "Consider adopting a healthier lifestyle with balanced nutrition and regular physical activity.",
		Color:       "yellow",
	},
	{
		Category:    Obese,
		Label:       "Obese",
		Range:       "≥ 30.0",
		Description: "It's recommended to consult with a healthcare provider for a personalized weight management plan.",
		Color:       "red",
	},
}

// Reference returns the static reference table, lowest band first.
// The returned slice is a copy.
func Reference() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify maps an unrounded BMI value to its category.
func Classify(raw float64) Category {
	switch {
	case raw < NormalThreshold:
		return Underweight
	case raw < OverweightThreshold:
		return Normal
	case raw < ObeseThreshold:
		return Overweight
	default:
		return Obese
	}
}

func (c Category) band() (Band, bool) {
	for _, b := range bands {
		if b.Category == c {
			return b, true
		}
	}
	return Band{}, false
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	_, ok := c.band()
	return ok
}

// Label is the display label, e.g. "Normal Weight".
func (c Category) Label() string {
	b, _ := c.band()
	return b.Label
}

// Description is the fixed sentence shown under the label.
func (c Category) Description() string {
	b, _ := c.band()
	return b.Description
}

// Range is the reference range text for the category.
func (c Category) Range() string {
	b, _ := c.band()
	return b.Range
}

// Color names the display colour used by the web and terminal forms.
func (c Category) Color() string {
	b, _ := c.band()
	return b.Color
}

func (c Category) String() string {
	return string(c)
}
