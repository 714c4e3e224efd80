package calculator

import "massiohealth/internal/bmi"

// maxBatchSize caps POST /calculator/bmi/batch.
const maxBatchSize = 100

// BMIRequest is the JSON body for POST /calculator/bmi.
type BMIRequest struct {
	Weight float64 `json:"weight" example:"70"`   // kilograms
	Height float64 `json:"height" example:"1.75"` // meters
}

func (r BMIRequest) measurement() bmi.Measurement {
	return bmi.Measurement{Weight: r.Weight, Height: r.Height}
}

// BMIResponse is the JSON response for a single computation.
type BMIResponse struct {
	Weight      float64      `json:"weight"`
	Height      float64      `json:"height"`
	BMI         float64      `json:"bmi" example:"22.9"`
	Category    bmi.Category `json:"category" example:"Normal"`
	Label       string       `json:"label" example:"Normal Weight"`
	Description string       `json:"description"`
	Range       string       `json:"range" example:"18.5 - 24.9"`
}

// NewBMIResponse pairs a request with its result.
func NewBMIResponse(req BMIRequest, res bmi.Result) BMIResponse {
	return BMIResponse{
		Weight:      req.Weight,
		Height:      req.Height,
		BMI:         res.Value,
		Category:    res.Category,
		Label:       res.Category.Label(),
		Description: res.Category.Description(),
		Range:       res.Category.Range(),
	}
}

// BatchRequest is the JSON body for POST /calculator/bmi/batch.
type BatchRequest struct {
	Measurements []BMIRequest `json:"measurements"`
}

// BatchResponse is the JSON response for POST /calculator/bmi/batch.
type BatchResponse struct {
	Count   int           `json:"count"`
	Results []BMIResponse `json:"results"`
}

// CategoriesResponse is the JSON response for GET /calculator/categories.
type CategoriesResponse struct {
	Categories []bmi.Band `json:"categories"`
}

// ErrorResponse documents the error body written by observability.RecordError.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}
