package database

import (
	"context"

	"gorm.io/gorm"
)

// ExecText executes text as a raw SQL statement.
func ExecText(ctx context.Context, db *gorm.DB, text string, args ...any) error {
	return db.WithContext(ctx).Exec(text, args...).Error
}

// QueryText runs a raw SQL query and scans the result into dest.
func QueryText(ctx context.Context, db *gorm.DB, dest any, text string, args ...any) error {
	return db.WithContext(ctx).Raw(text, args...).Scan(dest).Error
}
