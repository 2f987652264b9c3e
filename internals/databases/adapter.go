package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Adapter exposes raw-SQL primitives over the shared GORM pool.
// Statements use "?" placeholders; GORM rewrites them for the active dialect.
type Adapter struct {
	db *gorm.DB
}

func NewAdapter(db *gorm.DB) *Adapter {
	return &Adapter{db: db}
}

// Query scans every row of sql into dest, which must be a pointer to a slice.
func (a *Adapter) Query(ctx context.Context, dest any, sql string, args ...any) error {
	if err := a.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// QueryOne scans the first row into dest and reports whether a row existed.
func (a *Adapter) QueryOne(ctx context.Context, dest any, sql string, args ...any) (bool, error) {
	res := a.db.WithContext(ctx).Raw(sql, args...).Scan(dest)
	if res.Error != nil {
		return false, fmt.Errorf("query one: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Insert creates value (a model pointer) and leaves the generated primary key on it.
func (a *Adapter) Insert(ctx context.Context, value any) error {
	if err := a.db.WithContext(ctx).Create(value).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// Update executes an UPDATE statement and returns the affected row count.
func (a *Adapter) Update(ctx context.Context, sql string, args ...any) (int64, error) {
	res := a.db.WithContext(ctx).Exec(sql, args...)
	if res.Error != nil {
		return 0, fmt.Errorf("update: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Remove executes a DELETE statement and returns the affected row count.
func (a *Adapter) Remove(ctx context.Context, sql string, args ...any) (int64, error) {
	res := a.db.WithContext(ctx).Exec(sql, args...)
	if res.Error != nil {
		return 0, fmt.Errorf("delete: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (a *Adapter) Ping() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (a *Adapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsNotFound reports whether err is GORM's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
