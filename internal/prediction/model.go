// Package prediction defines the input contract for classifier result
// documents and a tolerant reader for them.
package prediction

// Record is one per-image prediction as emitted by the classifier. Every
// field is optional in the input; absent keys decode to zero values and
// absent numeric scores stay nil so downstream outputs can tell "missing"
// from "zero".
type Record struct {
	Filepath         string          `json:"filepath"`
	Country          string          `json:"country"`
	ModelVersion     string          `json:"model_version"`
	Prediction       string          `json:"prediction"`
	PredictionScore  *float64        `json:"prediction_score"`
	PredictionSource string          `json:"prediction_source"`
	Classifications  Classifications `json:"classifications"`
	Detections       []Detection     `json:"detections"`
}

// Classifications pairs two ordered sequences by position. The input
// contract does not guarantee they are the same length.
type Classifications struct {
	Classes []string  `json:"classes"`
	Scores  []float64 `json:"scores"`
}

// Detection is one detector hit on an image. BBox is intended to hold
// exactly four values (x, y, w, h) but may arrive short or empty.
type Detection struct {
	Category string    `json:"category"`
	Label    string    `json:"label"`
	Conf     *float64  `json:"conf"`
	BBox     []float64 `json:"bbox"`
}

// Document is the top-level input: a single JSON object with a
// "predictions" list.
type Document struct {
	Predictions []Record `json:"predictions"`
}
