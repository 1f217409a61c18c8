package entities

import (
	"time"

	"gorm.io/datatypes"
)

// TableName specifies the table name for Summary.
func (Summary) TableName() string {
	return "summaries"
}

// Summary is the persisted outcome of summarizing one uploaded paper.
// Rows are append-only; the pipeline never updates or deletes them.
type Summary struct {
	ID           string         `gorm:"type:uuid;primaryKey"`
	Filename     string         `gorm:"type:text;not null;index"`
	Summary      string         `gorm:"type:text;not null"`
	Conclusion   string         `gorm:"type:text;not null"`
	ProjectIdeas datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
