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

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestEmployee(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	employeeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO employees (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		employeeID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", email).Scan(&employeeID)
	}

	return employeeID
}

func CreateTestCustomer(t *testing.T, db DBLike, email, name string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO customers (id, email, name) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		customerID, email, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

type TestCoupon struct {
	Code           string
	DiscountType   string
	DiscountValue  float64
	ValidFrom      time.Time
	ValidUntil     *time.Time
	UsageLimit     *int32
	Status         string
	ExternalRuleID int64
	ExternalCodeID int64
	CustomerID     *uuid.UUID
}

func CreateTestCoupon(t *testing.T, db DBLike, c TestCoupon) uuid.UUID {
	t.Helper()

	if c.DiscountType == "" {
		c.DiscountType = "percentage"
		c.DiscountValue = 20
	}
	if c.Status == "" {
		c.Status = "active"
	}
	if c.ValidFrom.IsZero() {
		c.ValidFrom = time.Now().UTC().Add(-time.Hour)
	}
	if c.ExternalRuleID == 0 {
		c.ExternalRuleID = 9001
	}
	if c.ExternalCodeID == 0 {
		c.ExternalCodeID = 7001
	}

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO coupons (id, code, discount_type, discount_value, valid_from, valid_until,
		                     usage_limit, status, external_rule_id, external_code_id, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		couponID, c.Code, c.DiscountType, c.DiscountValue, c.ValidFrom, c.ValidUntil,
		c.UsageLimit, c.Status, c.ExternalRuleID, c.ExternalCodeID, c.CustomerID)
	require.NoError(t, err)

	return couponID
}

func CreateTestOrphan(t *testing.T, db DBLike, ruleID int64, code string) uuid.UUID {
	t.Helper()

	orphanID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO orphaned_rule_logs (id, external_rule_id, code, error_message, attempt_count)
		VALUES ($1, $2, $3, 'code attach failed after retries', 3)`,
		orphanID, ruleID, code)
	require.NoError(t, err)

	return orphanID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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

	return nil
}
