package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
)

// Postgres SQLSTATE codes treated as a storage that refuses writes.
const (
	sqlStateReadOnlyTransaction   = "25006"
	sqlStateInsufficientPrivilege = "42501"
)

// Querier is the subset of *pgxpool.Pool the remote strategy uses.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// PostgresStrategy keeps the whole document as one jsonb value in a single
// row keyed by model.DocumentKey.
type PostgresStrategy struct {
	db      Querier
	table   string
	timeout time.Duration
	now     func() time.Time
}

// NewPostgresStrategy returns the remote-store strategy over db.
func NewPostgresStrategy(db Querier, table string, timeout time.Duration) *PostgresStrategy {
	if table == "" {
		table = "cms_data"
	}
	return &PostgresStrategy{
		db:      db,
		table:   pgx.Identifier{table}.Sanitize(),
		timeout: timeout,
		now:     time.Now,
	}
}

func (p *PostgresStrategy) Name() string { return "remote" }

// EnsureSchema creates the content table when missing.
func (p *PostgresStrategy) EnsureSchema(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, p.table)

	if _, err := p.db.Exec(ctx, query); err != nil {
		return classifyRemoteError("Failed to create CMS table", err)
	}
	return nil
}

func (p *PostgresStrategy) Load(ctx context.Context) (*model.Document, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT data FROM %s WHERE id = $1`, p.table)

	var raw []byte
	err := p.db.QueryRow(ctx, query, model.DocumentKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && isEmptyPayload(raw)) {
		return nil, model.NewNotFoundError(
			"No CMS data found in the remote store",
			"Run `cmsctl seed` to initialize the database.",
			err,
		)
	}
	if err != nil {
		return nil, classifyRemoteError("Failed to fetch CMS data from the remote store", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, model.NewCorruptError("Remote CMS data is not valid JSON", err)
	}
	return &doc, nil
}

// Store upserts the single row and always stamps updated_at.
func (p *PostgresStrategy) Store(ctx context.Context, doc *model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return model.NewUnknownIOError("Failed to encode CMS data", err)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`, p.table)

	if _, err := p.db.Exec(ctx, query, model.DocumentKey, raw, p.now().UTC()); err != nil {
		return classifyRemoteError("Failed to save CMS data to the remote store", err)
	}

	log.Debug().Int("bytes", len(raw)).Msg("CMS data upserted")
	return nil
}

func (p *PostgresStrategy) Ping(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if err := p.db.Ping(ctx); err != nil {
		return classifyRemoteError("Remote store unreachable", err)
	}
	return nil
}

func (p *PostgresStrategy) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func isEmptyPayload(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func classifyRemoteError(message string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateReadOnlyTransaction, sqlStateInsufficientPrivilege:
			return model.NewReadOnlyError(
				"The remote store rejected the write",
				"Check that REMOTE_STORE_KEY has write access to the CMS table.",
				err,
			)
		}
	}
	return model.NewUnknownIOError(message, err)
}
