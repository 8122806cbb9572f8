package datastore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildsight/camtrap-go/internal/conf"
	"github.com/wildsight/camtrap-go/internal/flatten"
	"github.com/wildsight/camtrap-go/internal/prediction"
)

func ptr(f float64) *float64 { return &f }

// createDatabase initializes a temporary database for testing purposes.
func createDatabase(t *testing.T) Interface {
	t.Helper()
	settings := &conf.Settings{}
	settings.Output.SQLite.Path = filepath.Join(t.TempDir(), "test.db")

	store := New(settings)
	require.NoError(t, store.Open(), "Failed to open database")

	t.Cleanup(func() {
		assert.NoError(t, store.Close(), "Failed to close datastore")
	})

	return store
}

func TestSaveFileLinksChildRows(t *testing.T) {
	store := createDatabase(t)

	rec := flatten.Flatten(&prediction.Record{
		Filepath:        "cam01/IMG_0001.JPG",
		Country:         "FIN",
		ModelVersion:    "4.0.1a",
		Prediction:      "mammalia",
		PredictionScore: ptr(0.93),
		Classifications: prediction.Classifications{
			Classes: []string{
				"u1;mammalia;rodentia;sciuridae;sciurus;vulgaris;red squirrel",
				"u2;mammalia;carnivora;mustelidae;martes;martes;pine marten",
			},
			Scores: []float64{0.91, 0.05},
		},
		Detections: []prediction.Detection{
			{Category: "1", Label: "animal", Conf: ptr(0.88), BBox: []float64{0.1, 0.2, 0.3, 0.4}},
		},
	})

	require.NoError(t, store.SaveFile([]flatten.Record{rec}))

	count, err := store.CountImages()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	image, err := store.GetImage("cam01/IMG_0001.JPG")
	require.NoError(t, err)
	assert.NotZero(t, image.ID)
	assert.Equal(t, "FIN", image.Country)
	assert.False(t, image.CreatedAt.IsZero())

	require.Len(t, image.Classifications, 2)
	for _, c := range image.Classifications {
		assert.Equal(t, image.ID, c.ImageID)
	}
	first := image.Classifications[0]
	assert.Equal(t, "u1", first.ClassUUID)
	assert.Equal(t, "mammalia", first.TaxClass)
	assert.Equal(t, "rodentia", first.TaxOrder)
	assert.Equal(t, "sciuridae", first.TaxFamily)
	assert.Equal(t, "sciurus", first.TaxGenus)
	assert.Equal(t, "vulgaris", first.TaxSpecies)
	assert.Equal(t, "red squirrel", first.CommonName)
	assert.Equal(t, 1, first.RankInteger)
	assert.Equal(t, 0.91, *first.Score)
	assert.Equal(t, 2, image.Classifications[1].RankInteger)

	require.Len(t, image.Detections, 1)
	det := image.Detections[0]
	assert.Equal(t, image.ID, det.ImageID)
	assert.Equal(t, "animal", det.Label)
	assert.Equal(t, 0.1, *det.BBoxX)
	assert.Equal(t, 0.4, *det.BBoxH)
}

func TestSaveFileNullableColumns(t *testing.T) {
	store := createDatabase(t)

	rec := flatten.Flatten(&prediction.Record{
		Filepath: "cam02/IMG_0002.JPG",
		Classifications: prediction.Classifications{
			Scores: []float64{0.4},
		},
		Detections: []prediction.Detection{
			{Label: "vehicle", BBox: []float64{0.5}},
		},
	})

	require.NoError(t, store.SaveFile([]flatten.Record{rec}))

	image, err := store.GetImage("cam02/IMG_0002.JPG")
	require.NoError(t, err)
	assert.Nil(t, image.PredictionScore)

	require.Len(t, image.Classifications, 1)
	c := image.Classifications[0]
	assert.Empty(t, c.ClassUUID)
	assert.Empty(t, c.TaxClass)
	assert.Equal(t, 0.4, *c.Score)

	require.Len(t, image.Detections, 1)
	d := image.Detections[0]
	assert.Nil(t, d.Conf)
	assert.Equal(t, 0.5, *d.BBoxX)
	assert.Nil(t, d.BBoxY)
	assert.Nil(t, d.BBoxW)
	assert.Nil(t, d.BBoxH)
}

func TestSaveFileBatches(t *testing.T) {
	store := createDatabase(t)

	batch := func(paths ...string) []flatten.Record {
		records := make([]flatten.Record, 0, len(paths))
		for _, p := range paths {
			records = append(records, flatten.Flatten(&prediction.Record{Filepath: p}))
		}
		return records
	}

	// Two files committed independently.
	require.NoError(t, store.SaveFile(batch("a.jpg", "b.jpg")))
	require.NoError(t, store.SaveFile(batch("c.jpg")))

	count, err := store.CountImages()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestCascadeDelete(t *testing.T) {
	store := createDatabase(t)

	rec := flatten.Flatten(&prediction.Record{
		Filepath: "cam03/IMG_0003.JPG",
		Classifications: prediction.Classifications{
			Classes: []string{"u1;aves"},
			Scores:  []float64{0.9},
		},
		Detections: []prediction.Detection{{Label: "animal"}},
	})
	require.NoError(t, store.SaveFile([]flatten.Record{rec}))

	image, err := store.GetImage("cam03/IMG_0003.JPG")
	require.NoError(t, err)

	ds := store.(*SQLiteStore)
	require.NoError(t, ds.DB.Delete(&Image{}, image.ID).Error)

	var classifications, detections int64
	require.NoError(t, ds.DB.Model(&Classification{}).Where("image_id = ?", image.ID).Count(&classifications).Error)
	require.NoError(t, ds.DB.Model(&Detection{}).Where("image_id = ?", image.ID).Count(&detections).Error)
	assert.Zero(t, classifications)
	assert.Zero(t, detections)
}
