package repository

import (
	"context"
	"fmt"

	"legal-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGCorpusSource loads a statute corpus from the statute_sections table,
// populated by cmd/import-statutes. Row order follows the import order so
// ranking ties break the same way as with the CSV source.
type PGCorpusSource struct {
	db   *pgxpool.Pool
	kind models.CodeKind
}

// NewPGCorpusSource creates a Postgres-backed corpus source
func NewPGCorpusSource(db *pgxpool.Pool, kind models.CodeKind) *PGCorpusSource {
	return &PGCorpusSource{db: db, kind: kind}
}

// Load reads all sections for the source's code. A query failure yields an
// empty corpus plus the diagnostic, never a fatal condition.
func (s *PGCorpusSource) Load(ctx context.Context) (models.StatuteCorpus, error) {
	corpus := models.StatuteCorpus{Kind: s.kind}

	rows, err := s.db.Query(ctx, `
		SELECT section_number, title, full_legal_text, short_description
		FROM statute_sections
		WHERE source = $1
		ORDER BY position
	`, string(s.kind))
	if err != nil {
		return corpus, fmt.Errorf("failed to query statute_sections for %s: %w", s.kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		record := models.StatuteRecord{Source: s.kind}
		if err := rows.Scan(
			&record.SectionNumber,
			&record.Title,
			&record.FullLegalText,
			&record.ShortDescription,
		); err != nil {
			return models.StatuteCorpus{Kind: s.kind}, fmt.Errorf("failed to scan statute row: %w", err)
		}
		corpus.Records = append(corpus.Records, record)
	}

	if err := rows.Err(); err != nil {
		return models.StatuteCorpus{Kind: s.kind}, fmt.Errorf("failed to read statute rows: %w", err)
	}

	return corpus, nil
}
