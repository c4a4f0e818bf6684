//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultBookCaseTypeName = "Standard"

func CreateBookCaseType(t *testing.T, db DBLike, name string, monthlyPrice int64) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO book_case_types (id, name, monthly_price) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		typeID, name, monthlyPrice)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM book_case_types WHERE name = $1", name).Scan(&typeID)
		require.NoError(t, err)
	}

	return typeID
}

func CreateBookCase(t *testing.T, db DBLike, typeID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	bookCaseID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO book_cases (id, book_case_type_id, name) VALUES ($1, $2, $3)",
		bookCaseID, typeID, name)
	require.NoError(t, err)

	return bookCaseID
}

func CreateItem(t *testing.T, db DBLike, bookCaseID, ownerID uuid.UUID, title, state string) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO items (id, book_case_id, book_owner_id, title, state) VALUES ($1, $2, $3, $4, $5)",
		itemID, bookCaseID, ownerID, title, state)
	require.NoError(t, err)

	return itemID
}

// CreateSaleRecord marks the item SOLD; settled controls whether the payout is still pending.
func CreateSaleRecord(t *testing.T, db DBLike, itemID uuid.UUID, amount int64, settled bool) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	saleID := uuid.New()
	var settledAt *time.Time
	if settled {
		now := time.Now()
		settledAt = &now
	}

	_, err := db.Exec(ctx, "INSERT INTO sale_records (id, item_id, amount, settled_at) VALUES ($1, $2, $3, $4)",
		saleID, itemID, amount, settledAt)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "UPDATE items SET state = 'SOLD', updated_at = now() WHERE id = $1", itemID)
	require.NoError(t, err)

	return saleID
}

func ItemState(t *testing.T, db DBLike, itemID uuid.UUID) string {
	t.Helper()

	var state string
	err := db.QueryRow(context.Background(), "SELECT state FROM items WHERE id = $1", itemID).Scan(&state)
	require.NoError(t, err)
	return state
}

func CountNotificationJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO book_case_types (name, monthly_price) VALUES
		    ('Standard', 30000),
		    ('Large', 50000)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
