// internal/storage/postgres/postgres.go
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"company-site-api/internal/storage"
)

// Querier abstracts over *pgxpool.Pool and pgx.Tx so repositories work both
// standalone and inside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// NewStore assembles the PostgreSQL-backed storage.Store.
func NewStore(pool *pgxpool.Pool) *storage.Store {
	return &storage.Store{
		Users:           NewUserRepo(pool),
		Jobs:            NewJobRepo(pool),
		Applications:    NewApplicationRepo(pool),
		Announcements:   NewAnnouncementRepo(pool),
		ContactMessages: NewContactMessageRepo(pool),
	}
}
