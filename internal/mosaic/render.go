package mosaic

import (
	"embed"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/wildsight/camtrap-go/internal/errors"
)

//go:embed mosaic.gohtml
var templateFS embed.FS

var mosaicTemplate = template.Must(template.ParseFS(templateFS, "mosaic.gohtml"))

// Card is one tile of the mosaic.
type Card struct {
	Src     string
	Caption string
}

type templateData struct {
	Cards    []Card
	Lightbox bool
}

// Render writes the mosaic HTML for the given image paths to w. The caption
// of each card is the file's base name. With lightbox enabled each card
// links to a click-to-enlarge overlay.
func Render(w io.Writer, paths []string, lightbox bool) error {
	cards := make([]Card, 0, len(paths))
	for _, p := range paths {
		cards = append(cards, Card{Src: p, Caption: filepath.Base(p)})
	}

	if err := mosaicTemplate.Execute(w, templateData{Cards: cards, Lightbox: lightbox}); err != nil {
		return errors.New(err).
			Component("mosaic").
			Category(errors.CategoryGeneric).
			Context("operation", "render_template").
			Build()
	}
	return nil
}

// RenderFile renders the mosaic into the file at outputPath.
func RenderFile(outputPath string, paths []string, lightbox bool) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return errors.New(err).
			Component("mosaic").
			Category(errors.CategoryFileIO).
			Context("path", outputPath).
			Build()
	}
	defer f.Close()

	if err := Render(f, paths, lightbox); err != nil {
		return err
	}
	return f.Sync()
}
