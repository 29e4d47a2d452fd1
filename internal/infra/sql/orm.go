package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type ORM interface {
	AutoMigrate(dst ...any) error
	Count(count *int64) ORM
	Create(value any) ORM
	Delete(value any, conds ...any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Group(name string) ORM
	Limit(limit int) ORM
	Model(value any) ORM
	Offset(offset int) ORM
	Order(value any) ORM
	Pluck(column string, dest any) ORM
	Preload(query string, args ...any) ORM
	Save(value any) ORM
	Scan(dest any) ORM
	Select(query any, args ...any) ORM
	Table(name string, args ...any) ORM
	Transaction(fc func(tx ORM) error, opts ...*sql.TxOptions) error
	Unscoped() ORM
	Where(query any, args ...any) ORM
	WithContext(ctx context.Context) ORM
	WithTimeout(ctx context.Context, timeout time.Duration) ORM
	Joins(value string, args ...any) ORM
	InnerJoins(value string, args ...any) ORM

	Error() error
	RowsAffected() int64
}

type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
	timeout              time.Duration
	system               string
}

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicatedKey  = errors.New("duplicated key")
)

func (d DB) Error() error {
	switch {
	case d.DB.Error == nil:
		return nil
	case errors.Is(d.DB.Error, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case isDuplicatedKey(d.DB.Error):
		return fmt.Errorf("%w: %s", ErrDuplicatedKey, d.DB.Error.Error())
	default:
		return fmt.Errorf("database error: %w", d.DB.Error)
	}
}

func (d DB) RowsAffected() int64 {
	return d.DB.RowsAffected
}

// isDuplicatedKey recognizes unique index violations even when the driver
// does not implement gorm's error translator.
func isDuplicatedKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

var _ ORM = (*DB)(nil)

func (d DB) AutoMigrate(dst ...any) error {
	if d.autoMigrationEnabled {
		return d.DB.AutoMigrate(dst...)
	}

	return nil
}

func (d DB) Count(value *int64) ORM {
	d.setSpanAttributes("count")
	d.DB = d.DB.Count(value)
	return &d
}

func (d DB) Create(value any) ORM {
	d.setSpanAttributes("create")
	d.DB = d.DB.Create(value)
	return &d
}

func (d DB) Delete(value any, conds ...any) ORM {
	d.setSpanAttributes("delete")
	d.DB = d.DB.Delete(value, conds...)
	return &d
}

func (d DB) Find(value any, conds ...any) ORM {
	d.setSpanAttributes("find")
	d.DB = d.DB.Find(value, conds...)
	return &d
}

func (d DB) First(value any, conds ...any) ORM {
	d.setSpanAttributes("first")
	d.DB = d.DB.First(value, conds...)
	return &d
}

func (d DB) Group(name string) ORM {
	d.DB = d.DB.Group(name)
	return &d
}

func (d DB) Limit(value int) ORM {
	d.DB = d.DB.Limit(value)
	return &d
}

func (d DB) Model(value any) ORM {
	d.DB = d.DB.Model(value)
	return &d
}

func (d DB) Offset(value int) ORM {
	d.DB = d.DB.Offset(value)
	return &d
}

func (d DB) Order(value any) ORM {
	d.DB = d.DB.Order(value)
	return &d
}

func (d DB) Pluck(column string, dest any) ORM {
	d.setSpanAttributes("pluck")
	d.DB = d.DB.Pluck(column, dest)
	return &d
}

func (d DB) Preload(value string, conds ...any) ORM {
	d.DB = d.DB.Preload(value, conds...)
	return &d
}

func (d DB) Save(value any) ORM {
	d.setSpanAttributes("save")
	d.DB = d.DB.Save(value)
	return &d
}

func (d DB) Scan(dest any) ORM {
	d.setSpanAttributes("scan")
	d.DB = d.DB.Scan(dest)
	return &d
}

func (d DB) Select(query any, args ...any) ORM {
	d.DB = d.DB.Select(query, args...)
	return &d
}

func (d DB) Table(name string, args ...any) ORM {
	d.DB = d.DB.Table(name, args...)
	return &d
}

func (d DB) Unscoped() ORM {
	d.DB = d.DB.Unscoped()
	return &d
}

func (d DB) Where(value any, conds ...any) ORM {
	d.DB = d.DB.Where(value, conds...)
	return &d
}

func (d DB) WithContext(value context.Context) ORM {
	if d.timeout > 0 {
		return d.WithTimeout(value, d.timeout)
	}

	d.DB = d.DB.WithContext(value)
	return &d
}

func (d DB) WithTimeout(ctx context.Context, timeout time.Duration) ORM {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	// cancel is released once the deadline fires or the parent is done
	go func() {
		<-timeoutCtx.Done()
		cancel()
	}()
	d.DB = d.DB.WithContext(timeoutCtx)
	return &d
}

func (d DB) Transaction(f func(ORM) error, opts ...*sql.TxOptions) error {
	err := d.DB.Transaction(func(tx *gorm.DB) error {
		return f(&DB{DB: tx, autoMigrationEnabled: d.autoMigrationEnabled, timeout: d.timeout, system: d.system})
	}, opts...)
	if err != nil && isDuplicatedKey(err) && !errors.Is(err, ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrDuplicatedKey, err.Error())
	}

	return err
}

func (d DB) Joins(value string, conds ...any) ORM {
	d.DB = d.DB.Joins(value, conds...)
	return &d
}

func (d DB) InnerJoins(value string, conds ...any) ORM {
	d.DB = d.DB.InnerJoins(value, conds...)
	return &d
}

// setSpanAttributes sets OpenTelemetry span attributes for database operations
func (d DB) setSpanAttributes(operation string) {
	if ctx := d.DB.Statement.Context; ctx != nil {
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(
				attribute.String("span.kind", "client"),
				attribute.String("component", "database"),
				attribute.String("db.system", d.system),
				attribute.String("db.operation", operation),
			)
		}
	}
}

func (d DB) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}

	return sqlDB.PingContext(ctx)
}
