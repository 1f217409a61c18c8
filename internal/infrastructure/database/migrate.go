package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"paperforge/internal/infrastructure/database/entities"
	summaryrepo "paperforge/internal/infrastructure/repository/summary"
)

// AutoMigrate applies schema changes. Rows written by the previous
// deployment stored project_ideas as one pipe-delimited text value; they are
// converted to the structured jsonb column before the schema migration runs.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := convertLegacyIdeas(ctx, db, log); err != nil {
		return fmt.Errorf("convert legacy project_ideas: %w", err)
	}
	return db.WithContext(ctx).AutoMigrate(&entities.Summary{})
}

func convertLegacyIdeas(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if !db.Migrator().HasTable(&entities.Summary{}) {
		return nil
	}

	var columnType string
	err := db.WithContext(ctx).Raw(
		`SELECT data_type FROM information_schema.columns
		 WHERE table_name = 'summaries' AND column_name = 'project_ideas'`,
	).Scan(&columnType).Error
	if err != nil {
		return err
	}
	if columnType != "text" && columnType != "character varying" {
		return nil
	}

	type legacyRow struct {
		ID           string
		ProjectIdeas string
	}
	var rows []legacyRow
	if err := db.WithContext(ctx).Raw(`SELECT id, project_ideas FROM summaries`).Scan(&rows).Error; err != nil {
		return err
	}

	for _, row := range rows {
		ideas := summaryrepo.DecodeLegacyIdeas(row.ProjectIdeas)
		if ideas == nil {
			ideas = []string{}
		}
		encoded, err := json.Marshal(ideas)
		if err != nil {
			return err
		}
		err = db.WithContext(ctx).Exec(
			`UPDATE summaries SET project_ideas = ? WHERE id = ?`, string(encoded), row.ID,
		).Error
		if err != nil {
			return err
		}
	}

	err = db.WithContext(ctx).Exec(
		`ALTER TABLE summaries ALTER COLUMN project_ideas TYPE jsonb USING project_ideas::jsonb`,
	).Error
	if err != nil {
		return err
	}

	log.Info().Int("rows", len(rows)).Msg("converted legacy project_ideas column to jsonb")
	return nil
}
