// Package export writes flattened prediction rows to fixed-schema CSV
// files.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wildsight/camtrap-go/internal/errors"
	"github.com/wildsight/camtrap-go/internal/flatten"
)

// Output file names, fixed by the download/analysis tooling that consumes
// them.
const (
	SummaryFileName        = "predictions_summary.csv"
	ClassificationFileName = "classifications.csv"
	DetectionFileName      = "detections.csv"
)

var (
	summaryHeader = []string{
		"filepath", "country", "model_version",
		"prediction", "prediction_score", "prediction_source",
		"top_class", "top_score", "second_class", "second_score",
		"num_classes", "num_detections",
		"detection_label", "detection_conf",
		"bbox_x", "bbox_y", "bbox_w", "bbox_h",
	}
	classificationHeader = []string{
		"filepath", "country", "model_version",
		"class_rank", "class_uuid",
		"kingdom", "tax1", "tax2", "tax3", "tax4", "tax5",
		"common_name", "score",
	}
	detectionHeader = []string{
		"filepath", "country", "model_version",
		"detection_index", "category", "label", "conf",
		"bbox_x", "bbox_y", "bbox_w", "bbox_h",
	}
)

// CSVWriter writes flattened records to the three CSV outputs. Headers are
// written once at creation, so one writer can serve any number of input
// files in a run.
type CSVWriter struct {
	summary         *csv.Writer
	classifications *csv.Writer
	detections      *csv.Writer
	closers         []io.Closer
}

// NewCSVWriter creates the three output files in dir, truncating any
// previous run, and writes their header rows.
func NewCSVWriter(dir string) (*CSVWriter, error) {
	w := &CSVWriter{}

	open := func(name string, header []string) (*csv.Writer, error) {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.New(err).
				Component("export").
				Category(errors.CategoryFileIO).
				Context("file", name).
				Build()
		}
		w.closers = append(w.closers, f)
		cw := csv.NewWriter(f)
		if err := cw.Write(header); err != nil {
			return nil, errors.New(err).
				Component("export").
				Category(errors.CategoryFileIO).
				Context("file", name).
				Context("operation", "write_header").
				Build()
		}
		return cw, nil
	}

	var err error
	if w.summary, err = open(SummaryFileName, summaryHeader); err != nil {
		w.Close()
		return nil, err
	}
	if w.classifications, err = open(ClassificationFileName, classificationHeader); err != nil {
		w.Close()
		return nil, err
	}
	if w.detections, err = open(DetectionFileName, detectionHeader); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Write appends one flattened record: a single summary row plus one row per
// classification and per detection. Empty values are written as empty
// strings, never omitted columns.
func (w *CSVWriter) Write(rec *flatten.Record) error {
	img := &rec.Image
	row := []string{
		img.Filepath, img.Country, img.ModelVersion,
		img.Prediction, formatFloat(img.PredictionScore), img.PredictionSource,
		img.TopClass, formatFloat(img.TopScore), img.SecondClass, formatFloat(img.SecondScore),
		strconv.Itoa(img.NumClasses), strconv.Itoa(img.NumDetections),
		img.DetectionLabel, formatFloat(img.DetectionConf),
		formatFloat(img.BBox[0]), formatFloat(img.BBox[1]),
		formatFloat(img.BBox[2]), formatFloat(img.BBox[3]),
	}
	if err := w.summary.Write(row); err != nil {
		return w.writeError(err, SummaryFileName)
	}

	for i := range rec.Classifications {
		c := &rec.Classifications[i]
		row := []string{
			img.Filepath, img.Country, img.ModelVersion,
			strconv.Itoa(c.Rank), c.Taxon.ClassUUID,
			c.Taxon.Kingdom, c.Taxon.Tax1, c.Taxon.Tax2, c.Taxon.Tax3,
			c.Taxon.Tax4, c.Taxon.Tax5,
			c.Taxon.CommonName, formatFloat(c.Score),
		}
		if err := w.classifications.Write(row); err != nil {
			return w.writeError(err, ClassificationFileName)
		}
	}

	for i := range rec.Detections {
		d := &rec.Detections[i]
		row := []string{
			img.Filepath, img.Country, img.ModelVersion,
			strconv.Itoa(d.Index), d.Category, d.Label, formatFloat(d.Conf),
			formatFloat(d.BBox[0]), formatFloat(d.BBox[1]),
			formatFloat(d.BBox[2]), formatFloat(d.BBox[3]),
		}
		if err := w.detections.Write(row); err != nil {
			return w.writeError(err, DetectionFileName)
		}
	}

	return nil
}

// Close flushes buffered rows and closes the output files.
func (w *CSVWriter) Close() error {
	var firstErr error
	for _, cw := range []*csv.Writer{w.summary, w.classifications, w.detections} {
		if cw == nil {
			continue
		}
		cw.Flush()
		if err := cw.Error(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, c := range w.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return errors.New(firstErr).
			Component("export").
			Category(errors.CategoryFileIO).
			Context("operation", "close").
			Build()
	}
	return nil
}

func (w *CSVWriter) writeError(err error, file string) error {
	return errors.New(err).
		Component("export").
		Category(errors.CategoryFileIO).
		Context("file", file).
		Build()
}

// formatFloat renders an optional numeric value as its shortest round-trip
// representation, or an empty cell when absent.
func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}
