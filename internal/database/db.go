package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps dates consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the rental tables if they do not exist yet.  It is
// idempotent and safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id          BIGINT AUTO_INCREMENT PRIMARY KEY,
			name        VARCHAR(100) NOT NULL,
			birth_date  DATE NOT NULL,
			national_id VARCHAR(11) NOT NULL,
			phone       VARCHAR(20) NOT NULL,
			email       VARCHAR(255) NOT NULL,
			address     VARCHAR(100) NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_customers_national_id (national_id),
			UNIQUE KEY uq_customers_phone (phone),
			UNIQUE KEY uq_customers_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS movies (
			id           BIGINT AUTO_INCREMENT PRIMARY KEY,
			title        VARCHAR(200) NOT NULL,
			release_date DATE NOT NULL,
			genre        VARCHAR(100) NOT NULL,
			director     VARCHAR(100) NOT NULL,
			stock        BIGINT NOT NULL DEFAULT 0,
			created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_movies_title (title)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS rentals (
			id          BIGINT AUTO_INCREMENT PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			movie_id    BIGINT NOT NULL,
			rental_date DATE NOT NULL,
			due_date    DATE NOT NULL,
			returned    BOOLEAN NOT NULL DEFAULT FALSE,
			quantity    BIGINT NOT NULL DEFAULT 1,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_rentals_customer (customer_id),
			KEY idx_rentals_movie (movie_id),
			CONSTRAINT fk_rentals_customer FOREIGN KEY (customer_id) REFERENCES customers (id),
			CONSTRAINT fk_rentals_movie FOREIGN KEY (movie_id) REFERENCES movies (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
