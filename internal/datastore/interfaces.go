// interfaces.go defines the interface for the database operations
package datastore

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wildsight/camtrap-go/internal/conf"
	"github.com/wildsight/camtrap-go/internal/errors"
	"github.com/wildsight/camtrap-go/internal/flatten"
	"github.com/wildsight/camtrap-go/internal/taxonomy"
)

// Interface abstracts the underlying database implementation and defines
// the operations the loader needs.
type Interface interface {
	Open() error
	SaveFile(records []flatten.Record) error
	GetImage(filepath string) (Image, error)
	CountImages() (int64, error)
	Close() error
}

// DataStore implements Interface using a GORM database.
type DataStore struct {
	DB *gorm.DB // GORM database instance
}

// New creates a new datastore based on the provided settings. SQLite is the
// only supported engine today; the constructor keeps the teacher pattern of
// selecting the store by configuration so another engine can slot in.
func New(settings *conf.Settings) Interface {
	return &SQLiteStore{Settings: settings}
}

// SaveFile inserts one input file's flattened records as a single
// transaction. Each parent image row is created first and its assigned ID
// becomes the foreign key on every child row, so children can never
// reference a missing image. A failure rolls back only this file's batch.
func (ds *DataStore) SaveFile(records []flatten.Record) error {
	tx := ds.DB.Begin()
	if tx.Error != nil {
		return errors.New(tx.Error).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("operation", "begin_transaction").
			Build()
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i := range records {
		if err := saveRecord(tx, &records[i]); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("operation", "commit").
			Build()
	}
	return nil
}

// saveRecord writes one flattened record inside tx: parent first, children
// with the parent's fresh surrogate key.
func saveRecord(tx *gorm.DB, rec *flatten.Record) error {
	img := &rec.Image
	image := Image{
		Filepath:         img.Filepath,
		Country:          img.Country,
		Prediction:       img.Prediction,
		PredictionScore:  img.PredictionScore,
		PredictionSource: img.PredictionSource,
		ModelVersion:     img.ModelVersion,
	}
	if err := tx.Create(&image).Error; err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("operation", "insert_image").
			Context("filepath", img.Filepath).
			Build()
	}

	for i := range rec.Classifications {
		c := &rec.Classifications[i]
		row := Classification{
			ImageID:     image.ID,
			Score:       c.Score,
			RankInteger: c.Rank,
		}
		// The relational schema uses the 7-slot rank layout, not the CSV
		// output's 9-slot one; parse the raw string again here.
		if c.Class != "" {
			ranks := taxonomy.SplitRanks(c.Class)
			row.ClassUUID = ranks.ClassUUID
			row.TaxClass = ranks.Class
			row.TaxOrder = ranks.Order
			row.TaxFamily = ranks.Family
			row.TaxGenus = ranks.Genus
			row.TaxSpecies = ranks.Species
			row.CommonName = ranks.CommonName
		}
		if err := tx.Create(&row).Error; err != nil {
			return errors.New(err).
				Component("datastore").
				Category(errors.CategoryDatabase).
				Context("operation", "insert_classification").
				Context("filepath", img.Filepath).
				Build()
		}
	}

	for i := range rec.Detections {
		d := &rec.Detections[i]
		row := Detection{
			ImageID:  image.ID,
			Category: d.Category,
			Label:    d.Label,
			Conf:     d.Conf,
			BBoxX:    d.BBox[0],
			BBoxY:    d.BBox[1],
			BBoxW:    d.BBox[2],
			BBoxH:    d.BBox[3],
		}
		if err := tx.Create(&row).Error; err != nil {
			return errors.New(err).
				Component("datastore").
				Category(errors.CategoryDatabase).
				Context("operation", "insert_detection").
				Context("filepath", img.Filepath).
				Build()
		}
	}

	return nil
}

// GetImage retrieves the first image row matching filepath with its child
// rows preloaded.
func (ds *DataStore) GetImage(filepath string) (Image, error) {
	var image Image
	err := ds.DB.
		Preload("Classifications").
		Preload("Detections").
		Where("filepath = ?", filepath).
		First(&image).Error
	if err != nil {
		return Image{}, fmt.Errorf("getting image %q: %w", filepath, err)
	}
	return image, nil
}

// CountImages returns the number of image rows stored.
func (ds *DataStore) CountImages() (int64, error) {
	var count int64
	if err := ds.DB.Model(&Image{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting images: %w", err)
	}
	return count, nil
}

// createGormLogger configures and returns a new GORM logger instance.
func createGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)
}

// performAutoMigration creates or updates the three prediction tables and
// their indexes.
func performAutoMigration(db *gorm.DB) error {
	if err := db.AutoMigrate(&Image{}, &Classification{}, &Detection{}); err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("operation", "auto_migration").
			Build()
	}
	return nil
}
