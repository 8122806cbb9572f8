// model.go defines the relational data model for flattened predictions.
package datastore

import "time"

// Image is the parent row for one prediction record. Child rows reference
// its surrogate ID and are removed with it.
type Image struct {
	ID               uint   `gorm:"primaryKey"`
	Filepath         string `gorm:"index:idx_images_filepath;not null"`
	Country          string
	Prediction       string
	PredictionScore  *float64
	PredictionSource string
	ModelVersion     string
	CreatedAt        time.Time

	Classifications []Classification `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
	Detections      []Detection      `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
}

// Classification is one class/score pair for an image, with the taxonomy
// string broken out into the relational schema's rank columns.
type Classification struct {
	ID          uint `gorm:"primaryKey"`
	ImageID     uint `gorm:"index:idx_classifications_image;not null"`
	ClassUUID   string
	TaxClass    string
	TaxOrder    string
	TaxFamily   string
	TaxGenus    string
	TaxSpecies  string
	CommonName  string
	Score       *float64 `gorm:"index:idx_classifications_score,sort:desc"`
	RankInteger int
	CreatedAt   time.Time
}

// Detection is one detector hit for an image with its bbox padded to four
// columns. Nil values persist as NULL.
type Detection struct {
	ID        uint `gorm:"primaryKey"`
	ImageID   uint `gorm:"index:idx_detections_image;not null"`
	Category  string
	Label     string
	Conf      *float64
	BBoxX     *float64 `gorm:"column:bbox_x"`
	BBoxY     *float64 `gorm:"column:bbox_y"`
	BBoxW     *float64 `gorm:"column:bbox_w"`
	BBoxH     *float64 `gorm:"column:bbox_h"`
	CreatedAt time.Time
}
