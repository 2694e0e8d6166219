package database

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// parseSchema resolves the GORM schema for a model value.
func parseSchema(db *gorm.DB, model any) (*schema.Schema, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("failed to parse model schema: %w", err)
	}
	return stmt.Schema, nil
}

// TableName returns the database table name of the model.
func TableName(db *gorm.DB, model any) (string, error) {
	s, err := parseSchema(db, model)
	if err != nil {
		return "", err
	}
	return s.Table, nil
}

// Columns returns the model's fields in column order.
func Columns(db *gorm.DB, model any) ([]*schema.Field, error) {
	s, err := parseSchema(db, model)
	if err != nil {
		return nil, err
	}
	fields := make([]*schema.Field, 0, len(s.DBNames))
	for _, name := range s.DBNames {
		fields = append(fields, s.FieldsByDBName[name])
	}
	return fields, nil
}

// ColumnNames returns the model's column names in column order.
func ColumnNames(db *gorm.DB, model any) ([]string, error) {
	s, err := parseSchema(db, model)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(s.DBNames))
	copy(names, s.DBNames)
	return names, nil
}

// ForeignKeyColumns returns the names of the model's foreign-key columns,
// discovered from its belongs-to relationships rather than listed by hand.
func ForeignKeyColumns(db *gorm.DB, model any) ([]string, error) {
	s, err := parseSchema(db, model)
	if err != nil {
		return nil, err
	}
	fields := foreignKeyFields(s)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.DBName
	}
	return names, nil
}

func foreignKeyFields(s *schema.Schema) []*schema.Field {
	var fields []*schema.Field
	seen := make(map[string]bool)
	for _, rel := range s.Relationships.BelongsTo {
		for _, ref := range rel.References {
			fk := ref.ForeignKey
			if fk == nil || fk.Schema != s || seen[fk.DBName] {
				continue
			}
			seen[fk.DBName] = true
			fields = append(fields, fk)
		}
	}
	return fields
}

// UpsertByForeignKeys implements create-or-update for association models.
// The model's foreign-key columns form the identity: when a row with the
// same combination of foreign-key values exists, that row is updated with
// v's non-zero fields; otherwise v is inserted. A model without foreign
// keys is simply created.
func UpsertByForeignKeys(ctx context.Context, db *gorm.DB, v any) error {
	s, err := parseSchema(db, v)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return fmt.Errorf("model must be a pointer, got %T", v)
	}

	fks := foreignKeyFields(s)
	if len(fks) == 0 {
		return db.WithContext(ctx).Create(v).Error
	}
	where := make(map[string]any, len(fks))
	for _, f := range fks {
		val, _ := f.ValueOf(ctx, rv)
		where[f.DBName] = val
	}

	pk := s.PrioritizedPrimaryField
	if pk == nil {
		return fmt.Errorf("model %s has no primary key", s.Name)
	}

	var ids []uint
	err = db.WithContext(ctx).Model(v).Where(where).Limit(1).Pluck(pk.DBName, &ids).Error
	if err != nil {
		return fmt.Errorf("failed to look up existing association: %w", err)
	}

	if len(ids) == 0 {
		return db.WithContext(ctx).Create(v).Error
	}

	if err := pk.Set(ctx, rv.Elem(), ids[0]); err != nil {
		return fmt.Errorf("failed to set primary key: %w", err)
	}
	return db.WithContext(ctx).Model(v).Updates(v).Error
}
