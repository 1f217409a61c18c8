package summary

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "paperforge/internal/domain/summary"
	"paperforge/internal/infrastructure/database/entities"
	"paperforge/internal/utils/apperrors"
)

// PostgresRepository persists summary records via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert appends one record under a freshly generated identifier. Each call
// commits independently; a later batch failure does not roll it back.
func (r *PostgresRepository) Insert(ctx context.Context, record *domain.Record) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	ideas := record.ProjectIdeas
	if ideas == nil {
		ideas = []string{}
	}
	encoded, err := json.Marshal(ideas)
	if err != nil {
		return &apperrors.StorageError{Op: "insert", Cause: err}
	}

	entity := entities.Summary{
		ID:           record.ID,
		Filename:     record.Filename,
		Summary:      record.Summary,
		Conclusion:   record.Conclusion,
		ProjectIdeas: datatypes.JSON(encoded),
	}
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return &apperrors.StorageError{Op: "insert", Cause: err}
	}
	return nil
}

// ListAll returns every stored record ordered by filename.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.Record, error) {
	var rows []entities.Summary
	if err := r.db.WithContext(ctx).Order("filename ASC").Find(&rows).Error; err != nil {
		return nil, &apperrors.StorageError{Op: "list", Cause: err}
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		var ideas []string
		if len(row.ProjectIdeas) > 0 {
			if err := json.Unmarshal(row.ProjectIdeas, &ideas); err != nil {
				return nil, &apperrors.StorageError{Op: "list", Cause: err}
			}
		}
		records = append(records, domain.Record{
			ID:           row.ID,
			Filename:     row.Filename,
			Summary:      row.Summary,
			Conclusion:   row.Conclusion,
			ProjectIdeas: ideas,
		})
	}
	return records, nil
}

var _ domain.Repository = (*PostgresRepository)(nil)
