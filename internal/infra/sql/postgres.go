package sql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
	_maxRetries   = 10
	_retryDelay   = 5 * time.Second
)

type PostgresDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var (
	postgresInstance *PostgresDatabase
	postgresOnce     sync.Once
)

// NewPostgresORM opens the gorm handle used by repositories. queryTimeout is
// applied to every WithContext call when greater than zero.
func NewPostgresORM(dsn string, queryTimeout time.Duration) (*DB, error) {
	if pass, ok := os.LookupEnv("CRM_SERVER_POSTGRES_PASSWORD"); ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              queryTimeout,
		system:               "postgresql",
	}, nil
}

func NewPostgresDatabase(url string) *PostgresDatabase {
	postgresOnce.Do(func() {
		postgresInstance = &PostgresDatabase{url: url}
	})

	return postgresInstance
}

var _ Database = (*PostgresDatabase)(nil)

func (d *PostgresDatabase) Open() error {
	if d.Conn != nil {
		return nil
	}

	for range _maxRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			d.Conn = conn
			return nil
		}
		time.Sleep(_retryDelay)
	}

	return fmt.Errorf("impossible to connect to database after %d retries", _maxRetries)
}

func (d *PostgresDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

func (d *PostgresDatabase) Ping(ctx context.Context) error {
	if d.Conn == nil {
		return fmt.Errorf("postgres pool not opened")
	}

	pingCtx, cancelFn := context.WithTimeout(ctx, _queryTimeout)
	defer cancelFn()

	if err := d.Conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	return nil
}

func (d *PostgresDatabase) Command(ctx context.Context, sql string) error {
	cmdCtx, cancelFn := context.WithTimeout(ctx, _queryTimeout)
	defer cancelFn()

	if _, err := d.Conn.Exec(cmdCtx, sql); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}
