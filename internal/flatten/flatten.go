// Package flatten turns nested prediction records into flat rows shared by
// every output sink. The alignment and padding rules live here and only
// here so the CSV and relational outputs can never drift apart.
package flatten

import (
	"github.com/wildsight/camtrap-go/internal/prediction"
	"github.com/wildsight/camtrap-go/internal/taxonomy"
)

// Record is the flattened form of one prediction: one image summary row
// plus its ordered classification and detection child rows.
type Record struct {
	Image           ImageRow
	Classifications []ClassificationRow
	Detections      []DetectionRow
}

// ImageRow is the one-per-image summary. Pointer fields are nil when the
// corresponding input value was absent, which sinks render as an empty CSV
// cell or a NULL column.
type ImageRow struct {
	Filepath         string
	Country          string
	ModelVersion     string
	Prediction       string
	PredictionScore  *float64
	PredictionSource string

	TopClass      string
	TopScore      *float64
	SecondClass   string
	SecondScore   *float64
	NumClasses    int
	NumDetections int

	// Denormalized copy of the first detection, empty when there is none.
	DetectionLabel string
	DetectionConf  *float64
	BBox           [4]*float64
}

// ClassificationRow is one class/score pair. Class keeps the raw taxonomy
// string because the relational sink re-parses it with its own field count.
type ClassificationRow struct {
	Rank  int // 1-based position in the classes/scores sequences
	Class string
	Taxon taxonomy.Taxon
	Score *float64
}

// DetectionRow is one detector hit with its bbox padded to exactly four
// slots.
type DetectionRow struct {
	Index    int // 1-based position in the detections sequence
	Category string
	Label    string
	Conf     *float64
	BBox     [4]*float64
}

// Flatten produces the flat rows for one prediction record.
//
// The classes and scores sequences are zipped by position up to the length
// of the longer one; the missing side of a short pair stays empty/nil. A
// classification row whose class string is absent keeps an all-empty Taxon
// without ever invoking the taxonomy parser.
func Flatten(p *prediction.Record) Record {
	classes := p.Classifications.Classes
	scores := p.Classifications.Scores

	n := max(len(classes), len(scores))
	rows := make([]ClassificationRow, 0, n)
	for i := range n {
		row := ClassificationRow{Rank: i + 1}
		if i < len(classes) && classes[i] != "" {
			row.Class = classes[i]
			row.Taxon = taxonomy.Split(classes[i])
		}
		if i < len(scores) {
			row.Score = &scores[i]
		}
		rows = append(rows, row)
	}

	detections := make([]DetectionRow, 0, len(p.Detections))
	for i := range p.Detections {
		d := &p.Detections[i]
		detections = append(detections, DetectionRow{
			Index:    i + 1,
			Category: d.Category,
			Label:    d.Label,
			Conf:     d.Conf,
			BBox:     padBBox(d.BBox),
		})
	}

	image := ImageRow{
		Filepath:         p.Filepath,
		Country:          p.Country,
		ModelVersion:     p.ModelVersion,
		Prediction:       p.Prediction,
		PredictionScore:  p.PredictionScore,
		PredictionSource: p.PredictionSource,
		NumClasses:       n,
		NumDetections:    len(p.Detections),
	}

	// Top and second aggregates come from each sequence independently; a
	// score may exist without a class label and vice versa.
	if len(classes) > 0 {
		image.TopClass = classes[0]
	}
	if len(scores) > 0 {
		image.TopScore = &scores[0]
	}
	if len(classes) > 1 {
		image.SecondClass = classes[1]
	}
	if len(scores) > 1 {
		image.SecondScore = &scores[1]
	}

	if len(detections) > 0 {
		image.DetectionLabel = detections[0].Label
		image.DetectionConf = detections[0].Conf
		image.BBox = detections[0].BBox
	}

	return Record{
		Image:           image,
		Classifications: rows,
		Detections:      detections,
	}
}

// padBBox pads or truncates bbox to exactly four slots. Missing trailing
// values stay nil, extra values are dropped.
func padBBox(bbox []float64) [4]*float64 {
	var out [4]*float64
	for i := range out {
		if i < len(bbox) {
			out[i] = &bbox[i]
		}
	}
	return out
}
