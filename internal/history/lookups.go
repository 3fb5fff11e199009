package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lookup is one recorded query and the record it resolved to.
type Lookup struct {
	ID            string
	Query         string  // what the user typed
	Matched       string  // the record name it resolved to
	Number        int     // national pokedex number of the match
	Similarity    float64 // Jaro-Winkler similarity of the match
	Distance      int     // Levenshtein distance of the match
	CreatedUnixMs int64
}

// RecordLookup inserts a lookup. A missing ID and timestamp are filled in.
func (s *Store) RecordLookup(ctx context.Context, l *Lookup) error {
	if l == nil {
		return errors.New("lookup cannot be nil")
	}
	if l.Query == "" {
		return errors.New("query is required")
	}
	if l.Matched == "" {
		return errors.New("matched is required")
	}

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedUnixMs == 0 {
		l.CreatedUnixMs = time.Now().UnixMilli()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (
			id, query, matched, number, similarity, distance, created_at_unix_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		l.ID,
		l.Query,
		l.Matched,
		l.Number,
		l.Similarity,
		l.Distance,
		l.CreatedUnixMs,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("lookup with id %s already exists", l.ID)
		}
		return fmt.Errorf("failed to record lookup: %w", err)
	}

	return nil
}

// Recent returns the newest lookups, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Lookup, error) {
	if limit <= 0 {
		// Default limit to prevent unbounded queries
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, matched, number, similarity, distance, created_at_unix_ms
		FROM lookups
		ORDER BY created_at_unix_ms DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var lookups []Lookup
	for rows.Next() {
		var l Lookup
		err := rows.Scan(
			&l.ID,
			&l.Query,
			&l.Matched,
			&l.Number,
			&l.Similarity,
			&l.Distance,
			&l.CreatedUnixMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		lookups = append(lookups, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lookups: %w", err)
	}

	return lookups, nil
}

// Clear deletes all lookups and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lookups")
	if err != nil {
		return 0, fmt.Errorf("failed to clear lookups: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
