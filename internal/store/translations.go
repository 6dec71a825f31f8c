package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Translation is one history record.
type Translation struct {
	Seq       int64     `json:"seq"`
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target,omitempty"`
	Model     string    `json:"model,omitempty"`
	ErrorCode string    `json:"error_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Failed reports whether the translation ended in an error.
func (t Translation) Failed() bool {
	return t.ErrorCode != ""
}

// RecordTranslation appends rec to the history and returns it with ID, Seq
// and CreatedAt filled in. A non-empty rec.ID is kept.
func (s *Store) RecordTranslation(ctx context.Context, rec Translation) (Translation, error) {
	if rec.Source == "" {
		return Translation{}, fmt.Errorf("record translation: source is required")
	}
	if rec.ID == "" {
		rec.ID = s.newID()
	}
	rec.CreatedAt = s.now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO translations (id, source, target, model, error_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Source,
		rec.Target,
		rec.Model,
		rec.ErrorCode,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Translation{}, fmt.Errorf("record translation: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return Translation{}, fmt.Errorf("record translation: %w", err)
	}
	rec.Seq = seq
	return rec, nil
}

// ListTranslations returns up to limit records, newest first.
// A limit <= 0 returns every record.
//
// Returns an empty slice (not nil) when the history is empty.
func (s *Store) ListTranslations(ctx context.Context, limit int) ([]Translation, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, source, target, model, error_code, created_at
		FROM translations
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	records := []Translation{}
	for rows.Next() {
		rec, err := scanTranslation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}

	return records, nil
}

// GetTranslation returns the record with the given ID.
// Returns sql.ErrNoRows (wrapped) when it does not exist.
func (s *Store) GetTranslation(ctx context.Context, id string) (Translation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, id, source, target, model, error_code, created_at
		FROM translations
		WHERE id = ?
	`, id)

	rec, err := scanTranslation(row)
	if err != nil {
		return Translation{}, fmt.Errorf("get translation %s: %w", id, err)
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTranslation(row scanner) (Translation, error) {
	var (
		rec       Translation
		createdAt string
	)
	if err := row.Scan(&rec.Seq, &rec.ID, &rec.Source, &rec.Target, &rec.Model, &rec.ErrorCode, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return Translation{}, err
		}
		return Translation{}, fmt.Errorf("scan translation: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Translation{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = t
	return rec, nil
}
