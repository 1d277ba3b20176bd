package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
)

// schemaStatements create the two tables if they are missing. They are idempotent
// and are not a versioned migration history.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id          VARCHAR(10)  CONSTRAINT students_pkey PRIMARY KEY,
		code        VARCHAR(20)  NOT NULL,
		names       VARCHAR(100) NOT NULL,
		lastnames   VARCHAR(100) NOT NULL,
		birth_date  TIMESTAMP    NOT NULL,
		age         INTEGER      NOT NULL,
		email       VARCHAR(100) NOT NULL,
		log_details VARCHAR(500) NOT NULL DEFAULT '',
		CONSTRAINT students_code_key UNIQUE (code),
		CONSTRAINT students_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id          BIGSERIAL    PRIMARY KEY,
		code        VARCHAR(20)  NOT NULL,
		name        VARCHAR(100) NOT NULL,
		instructor  VARCHAR(100) NOT NULL,
		schedule    VARCHAR(100) NOT NULL,
		location    VARCHAR(100) NOT NULL,
		log_details VARCHAR(500) NOT NULL DEFAULT '',
		student_id  VARCHAR(10)  NOT NULL REFERENCES students(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subjects_student_id ON subjects (student_id)`,
}

// EnsureSchema creates the students and subjects tables inside one transaction
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}

	logger.Info().Int("statements", len(schemaStatements)).Msg("Database schema ensured")
	return nil
}
