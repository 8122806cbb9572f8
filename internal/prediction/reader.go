package prediction

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/wildsight/camtrap-go/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Read decodes one prediction document from r. A document that is not
// valid JSON at the top level is a fatal error; a missing "predictions"
// key simply yields no records.
func Read(r io.Reader) ([]Record, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.New(err).
			Component("prediction").
			Category(errors.CategoryFileParsing).
			Context("operation", "decode_document").
			Build()
	}
	return doc.Predictions, nil
}

// ReadFile decodes the prediction document stored at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("prediction").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, errors.New(err).
			Component("prediction").
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}
	return records, nil
}
