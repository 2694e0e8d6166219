package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date for the given models using GORM's
// auto-migration, logging one step per model. Auto-migration is additive:
// it creates missing tables, columns, and indexes but never drops anything.
func Migrate(db *gorm.DB, log *zap.Logger, models ...any) error {
	start := time.Now()
	log.Info("schema migration starting", zap.Int("models", len(models)))

	for _, model := range models {
		stepStart := time.Now()
		name, err := TableName(db, model)
		if err != nil {
			return err
		}

		existed := db.Migrator().HasTable(model)
		if err := db.AutoMigrate(model); err != nil {
			log.Error("schema migration step failed",
				zap.String("table", name),
				zap.Error(err),
				zap.Duration("step_duration", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", name, err)
		}

		log.Info("schema migration step",
			zap.String("table", name),
			zap.Bool("existed", existed),
			zap.Duration("step_duration", time.Since(stepStart)),
		)
	}

	log.Info("schema migration complete", zap.Duration("duration", time.Since(start)))
	return nil
}
