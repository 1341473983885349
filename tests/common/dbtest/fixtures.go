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

	"shiftboard/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// hashes a plaintext password for fixture rows
func MustHashPassword(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.HashPassword(plain)
	require.NoError(t, err)
	return hash
}

func CreateTestCompany(t *testing.T, db Querier, name, email string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO companies (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING", companyID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&companyID)
	}

	return companyID
}

func CreateTestUser(t *testing.T, db Querier, companyID uuid.UUID, email, name, role, passwordHash string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, name, role, company_id, is_active) VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, name, role, companyID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestShift(t *testing.T, db Querier, companyID, assignedTo, createdBy uuid.UUID, title string, start, end time.Time) uuid.UUID {
	t.Helper()

	shiftID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO shifts (id, company_id, title, start_time, end_time, assigned_to, created_by, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'SCHEDULED', '')`,
		shiftID, companyID, title, start, end, assignedTo, createdBy)
	require.NoError(t, err)

	return shiftID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name, email) VALUES
		    (gen_random_uuid(), 'Default Company', 'default@example.com'),
		    (gen_random_uuid(), 'Test Company', 'test-co@example.com')
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
