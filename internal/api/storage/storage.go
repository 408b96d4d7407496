package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Gateway is the single-table key-value store behind the candidate handlers
type Gateway interface {
	// Put writes the whole record, keyed by its id.
	Put(ctx context.Context, candidate *model.Candidate) error
	// Get returns nil and no error when no record has that id.
	Get(ctx context.Context, id string) (*model.Candidate, error)
	// Scan reads the whole table projected to id, fullname and email.
	Scan(ctx context.Context) ([]model.CandidateSummary, error)
}

// PostgresStore keeps candidates in one flat table:
//
//	CREATE TABLE candidates (
//		id           TEXT PRIMARY KEY,
//		fullname     TEXT NOT NULL,
//		email        TEXT NOT NULL,
//		experience   DOUBLE PRECISION NOT NULL,
//		submitted_at BIGINT NOT NULL,
//		updated_at   BIGINT NOT NULL
//	);
type PostgresStore struct {
	db    *sqlx.DB
	table string
}

func NewPostgresStore(db *sqlx.DB, table string) *PostgresStore {
	return &PostgresStore{
		db:    db,
		table: pq.QuoteIdentifier(table),
	}
}

func (s *PostgresStore) Put(ctx context.Context, candidate *model.Candidate) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, fullname, email, experience, submitted_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`, s.table)

	_, err := s.db.ExecContext(
		ctx,
		query,
		candidate.ID,
		candidate.Fullname,
		candidate.Email,
		candidate.Experience,
		candidate.SubmittedAt,
		candidate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put candidate: %w", err)
	}

	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*model.Candidate, error) {
	query := fmt.Sprintf(`
		SELECT id, fullname, email, experience, submitted_at, updated_at
		FROM %s
		WHERE id = $1
	`, s.table)

	var candidate model.Candidate
	err := s.db.GetContext(ctx, &candidate, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return &candidate, nil
}

func (s *PostgresStore) Scan(ctx context.Context) ([]model.CandidateSummary, error) {
	query := fmt.Sprintf(`SELECT id, fullname, email FROM %s`, s.table)

	candidates := []model.CandidateSummary{}
	if err := s.db.SelectContext(ctx, &candidates, query); err != nil {
		return nil, err
	}

	return candidates, nil
}
