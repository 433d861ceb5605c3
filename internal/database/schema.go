package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDialect is returned for a driver name without a schema.
var ErrUnknownDialect = errors.New("unknown database dialect")

// The tables are listed in dependency order.  {{id}} is replaced with
// the dialect's auto-increment primary key definition.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS theatres (
		id {{id}},
		name VARCHAR(30) NOT NULL,
		number_of_halls SMALLINT NOT NULL,
		director VARCHAR(30) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plays (
		id {{id}},
		title VARCHAR(50) NOT NULL,
		duration_seconds INTEGER NOT NULL,
		rating FLOAT NOT NULL,
		genre INTEGER NOT NULL,
		description VARCHAR(700) NOT NULL,
		screenwriter VARCHAR(30) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS casts (
		id {{id}},
		full_name VARCHAR(30) NOT NULL,
		is_main_character BOOLEAN NOT NULL,
		phone_number VARCHAR(15) NOT NULL,
		play_id BIGINT NOT NULL,
		FOREIGN KEY (play_id) REFERENCES plays(id)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id {{id}},
		price DECIMAL(10,2) NOT NULL,
		seat_row SMALLINT NOT NULL,
		play_id BIGINT NOT NULL,
		theatre_id BIGINT NOT NULL,
		FOREIGN KEY (play_id) REFERENCES plays(id),
		FOREIGN KEY (theatre_id) REFERENCES theatres(id)
	)`,
}

var primaryKeys = map[string]string{
	DriverMySQL:  "BIGINT AUTO_INCREMENT PRIMARY KEY",
	DriverSQLite: "INTEGER PRIMARY KEY AUTOINCREMENT",
}

// SchemaSQL returns the CREATE TABLE statements for the given driver.
func SchemaSQL(driver string) ([]string, error) {
	pk, ok := primaryKeys[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, driver)
	}
	stmts := make([]string, 0, len(tables))
	for _, t := range tables {
		stmts = append(stmts, strings.ReplaceAll(t, "{{id}}", pk))
	}
	return stmts, nil
}

// EnsureSchema creates any missing table.  Existing tables are left as
// they are.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	stmts, err := SchemaSQL(driver)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
