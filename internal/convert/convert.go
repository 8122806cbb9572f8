// Package convert drives the batch transforms: it walks the input files,
// flattens their predictions and routes the rows to the active sink. One
// bad input file is logged and skipped; a run fails only when every file
// failed.
package convert

import (
	"log/slog"

	"github.com/wildsight/camtrap-go/internal/conf"
	"github.com/wildsight/camtrap-go/internal/datastore"
	"github.com/wildsight/camtrap-go/internal/errors"
	"github.com/wildsight/camtrap-go/internal/export"
	"github.com/wildsight/camtrap-go/internal/flatten"
	"github.com/wildsight/camtrap-go/internal/mosaic"
	"github.com/wildsight/camtrap-go/internal/prediction"
)

// RunCSV flattens every prediction in the given files into the three CSV
// outputs in the configured output directory. Headers are written once for
// the whole run.
func RunCSV(settings *conf.Settings, files []string) error {
	w, err := export.NewCSVWriter(settings.Output.Directory)
	if err != nil {
		return err
	}

	failed := 0
	total := 0
	for _, path := range files {
		records, err := prediction.ReadFile(path)
		if err != nil {
			slog.Error("Skipping input file", "path", path, "error", err)
			failed++
			continue
		}

		for i := range records {
			rec := flatten.Flatten(&records[i])
			if err := w.Write(&rec); err != nil {
				// Output write failures are not per-file conditions;
				// abort the run.
				w.Close()
				return err
			}
		}

		slog.Info("Processed input file", "path", path, "predictions", len(records))
		total += len(records)
	}

	if err := w.Close(); err != nil {
		return err
	}

	if failed == len(files) {
		return errors.Newf("all %d input files failed", failed).
			Component("convert").
			Category(errors.CategoryFileParsing).
			Build()
	}

	slog.Info("CSV export complete",
		"predictions", total,
		"files_failed", failed,
		"summary", export.SummaryFileName,
		"classifications", export.ClassificationFileName,
		"detections", export.DetectionFileName)
	return nil
}

// RunSQLite flattens every prediction in the given files into the SQLite
// database. Each file is committed as one batch; a failing file aborts only
// its own batch and earlier files stay committed.
func RunSQLite(settings *conf.Settings, files []string) error {
	store := datastore.New(settings)
	if err := store.Open(); err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	failed := 0
	total := 0
	for _, path := range files {
		records, err := prediction.ReadFile(path)
		if err != nil {
			slog.Error("Skipping input file", "path", path, "error", err)
			failed++
			continue
		}

		flattened := make([]flatten.Record, 0, len(records))
		for i := range records {
			flattened = append(flattened, flatten.Flatten(&records[i]))
		}

		if err := store.SaveFile(flattened); err != nil {
			slog.Error("Failed to store input file", "path", path, "error", err)
			failed++
			continue
		}

		slog.Info("Processed input file", "path", path, "predictions", len(records))
		total += len(records)
	}

	if failed == len(files) {
		return errors.Newf("all %d input files failed", failed).
			Component("convert").
			Category(errors.CategoryDatabase).
			Build()
	}

	slog.Info("Database load complete",
		"predictions", total,
		"files_failed", failed,
		"database", settings.Output.SQLite.Path)
	return nil
}

// RunMosaic renders the image mosaic for the CSV at csvPath. An empty
// output path derives the HTML name from the CSV name.
func RunMosaic(settings *conf.Settings, csvPath, output string) error {
	paths, err := mosaic.ReadPaths(csvPath, settings.Mosaic.Column)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.Newf("no usable image paths in %s", csvPath).
			Component("convert").
			Category(errors.CategoryImageList).
			Build()
	}

	if output == "" {
		output = mosaic.OutputName(csvPath)
	}

	if err := mosaic.RenderFile(output, paths, settings.Mosaic.Lightbox); err != nil {
		return err
	}

	slog.Info("Mosaic generated", "images", len(paths), "output", output)
	return nil
}
