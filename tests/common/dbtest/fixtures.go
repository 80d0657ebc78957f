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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// InsertPromoCode writes a row directly, bypassing the store. usedBy == ""
// inserts an unused code.
func InsertPromoCode(t *testing.T, db DBLike, code string, createdAt time.Time, usedBy string) {
	t.Helper()

	ctx := context.Background()
	if usedBy == "" {
		_, err := db.Exec(ctx, `INSERT INTO promo_codes (code, lead_name, product_interest, contact, created_at)
			VALUES ($1, 'Fixture Lead', 'Fixture Plan', 'fixture@example.com', $2)`, code, createdAt)
		require.NoError(t, err)
		return
	}
	_, err := db.Exec(ctx, `INSERT INTO promo_codes (code, lead_name, product_interest, contact, created_at, status, used_by, used_at)
		VALUES ($1, 'Fixture Lead', 'Fixture Plan', 'fixture@example.com', $2, 'used', $3, $4)`,
		code, createdAt, usedBy, createdAt.Add(time.Minute))
	require.NoError(t, err)
}

func CountPromoCodes(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM promo_codes WHERE code = $1", code).Scan(&n)
	require.NoError(t, err)
	return n
}

func PromoCodeStatus(t *testing.T, db DBLike, code string) (status string, usedBy *string) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT status, used_by FROM promo_codes WHERE code = $1", code).Scan(&status, &usedBy)
	require.NoError(t, err)
	return status, usedBy
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

// ResetCollection drops the hash and the used set of a KeyValue collection.
func ResetCollection(client redis.UniversalClient, collection string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return client.Del(ctx, collection, collection+":used").Err()
}
