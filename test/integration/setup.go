package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			name     TEXT NOT NULL,
			email    TEXT PRIMARY KEY,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sellers (
			full_name         TEXT NOT NULL,
			email             TEXT PRIMARY KEY,
			store_name        TEXT NOT NULL,
			store_description TEXT NOT NULL DEFAULT '',
			password          TEXT NOT NULL,
			status            TEXT NOT NULL DEFAULT 'pending',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
			id           BIGSERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			price        DOUBLE PRECISION NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL DEFAULT '',
			image        TEXT NOT NULL DEFAULT '',
			seller_email TEXT NOT NULL DEFAULT '',
			seller_name  TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL DEFAULT 'draft',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS seller_activity (
			id            BIGSERIAL PRIMARY KEY,
			seller_email  TEXT NOT NULL,
			product_id    BIGINT NOT NULL,
			action        TEXT NOT NULL,
			product_title TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id          BIGSERIAL PRIMARY KEY,
			email       TEXT NOT NULL,
			full_name   TEXT NOT NULL DEFAULT '',
			total_price DOUBLE PRECISION NOT NULL,
			address     TEXT NOT NULL DEFAULT '',
			city        TEXT NOT NULL DEFAULT '',
			state       TEXT NOT NULL DEFAULT '',
			pincode     TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id       BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
			title    TEXT NOT NULL,
			price    DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS contact_messages (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			subject    TEXT NOT NULL DEFAULT '',
			message    TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'new',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// CleanupDB removes all rows from every table.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{"order_items", "orders", "seller_activity", "products", "contact_messages", "sellers", "users"}
	for _, table := range tables {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}

// SeedApprovedSeller inserts an approved seller account so product
// management endpoints accept its email.
func SeedApprovedSeller(t *testing.T, pool *pgxpool.Pool, email, name string) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
		INSERT INTO sellers (full_name, email, store_name, store_description, password, status)
		VALUES ($1, $2, $3, '', '', 'approved')
	`, name, email, name+"'s Store")
	if err != nil {
		t.Fatalf("failed to seed seller %s: %v", email, err)
	}
}

// SeedProducts inserts a mix of published and draft products for two sellers.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	rows := []struct {
		title, category, sellerEmail, sellerName, status string
		price                                            float64
	}{
		{"Wireless Keyboard", "electronics", "alice@example.com", "Alice", "published", 49.99},
		{"USB Mouse", "electronics", "alice@example.com", "Alice", "published", 19.99},
		{"Desk Lamp", "home", "alice@example.com", "Alice", "draft", 34.50},
		{"Running Shoes", "clothing", "bob@example.com", "Bob", "published", 89.00},
		{"Winter Jacket", "clothing", "bob@example.com", "Bob", "draft", 120.00},
	}

	for _, r := range rows {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (title, price, description, category, image, seller_email, seller_name, status)
			VALUES ($1, $2, '', $3, '', $4, $5, $6)
		`, r.title, r.price, r.category, r.sellerEmail, r.sellerName, r.status)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", r.title, err)
		}
	}
}
