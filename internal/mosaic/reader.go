// Package mosaic renders a CSV column of image paths as a browsable HTML
// image grid.
package mosaic

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/wildsight/camtrap-go/internal/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ReadPaths extracts the image paths from the CSV at path. The column named
// by column is used when the header has it; otherwise the first column is
// taken. Blank cells are skipped. Gzipped input is decompressed when the
// file carries a .gz suffix or starts with the gzip magic bytes.
func ReadPaths(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("mosaic").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	defer f.Close()

	r, err := maybeGzip(f, path)
	if err != nil {
		return nil, errors.New(err).
			Component("mosaic").
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}

	paths, err := readColumn(r, column)
	if err != nil {
		return nil, errors.New(err).
			Component("mosaic").
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}
	return paths, nil
}

// maybeGzip wraps r in a gzip reader when the content is compressed. The
// magic bytes decide, not just the file name.
func maybeGzip(r io.Reader, path string) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".gz") || bytes.Equal(head, gzipMagic) {
		return gzip.NewReader(br)
	}
	return br, nil
}

// readColumn reads the header, picks the requested column (or the first one
// as a fallback), and collects its non-blank values.
func readColumn(r io.Reader, column string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	col := 0
	for i, name := range header {
		if strings.TrimSpace(name) == column {
			col = i
			break
		}
	}

	var paths []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(row) {
			continue
		}
		val := strings.Trim(strings.TrimSpace(row[col]), `"`)
		if val != "" {
			paths = append(paths, val)
		}
	}
	return paths, nil
}

// OutputName derives the HTML output path from the input CSV name: the .gz
// and .csv suffixes are stripped and .html appended, in the same directory.
func OutputName(csvPath string) string {
	base := filepath.Base(csvPath)
	if strings.HasSuffix(strings.ToLower(base), ".gz") {
		base = base[:len(base)-3]
	}
	if strings.HasSuffix(strings.ToLower(base), ".csv") {
		base = base[:len(base)-4]
	}
	return filepath.Join(filepath.Dir(csvPath), base+".html")
}
