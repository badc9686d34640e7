package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"

	"legal-backend/models"
	"legal-backend/storage"
)

// CSVCorpusSource loads a statute corpus from a CSV object in a Store.
// One row per statutory section; the header row is resolved against a
// declarative SchemaMapping once, at load time.
type CSVCorpusSource struct {
	store   storage.Store
	key     string
	kind    models.CodeKind
	mapping SchemaMapping
}

// NewCSVCorpusSource creates a CSV-backed corpus source
func NewCSVCorpusSource(store storage.Store, key string, kind models.CodeKind, mapping SchemaMapping) *CSVCorpusSource {
	return &CSVCorpusSource{
		store:   store,
		key:     key,
		kind:    kind,
		mapping: mapping,
	}
}

// Load reads and maps the CSV. A missing file yields an empty corpus with a
// nil error; a parse failure yields an empty corpus plus the diagnostic.
// Neither is fatal to the caller.
func (s *CSVCorpusSource) Load(ctx context.Context) (models.StatuteCorpus, error) {
	corpus := models.StatuteCorpus{Kind: s.kind}

	body, err := s.store.Fetch(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			log.Printf("Warning: corpus file %s not found, serving empty %s corpus", s.key, s.kind)
			return corpus, nil
		}
		return corpus, fmt.Errorf("failed to fetch corpus %s: %w", s.key, err)
	}
	defer body.Close()

	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return corpus, fmt.Errorf("failed to parse corpus %s: %w", s.key, err)
	}
	if len(rows) < 2 {
		return corpus, nil
	}

	cols := resolveColumns(rows[0], s.mapping)
	if cols.sectionNumber < 0 && cols.title < 0 && cols.fullLegalText < 0 {
		return corpus, fmt.Errorf("corpus %s: no candidate column matched any canonical field (header: %v)", s.key, rows[0])
	}

	for _, row := range rows[1:] {
		record := models.StatuteRecord{
			SectionNumber:    cellAt(row, cols.sectionNumber),
			Title:            cellAt(row, cols.title),
			FullLegalText:    cellAt(row, cols.fullLegalText),
			ShortDescription: cellAt(row, cols.shortDescription),
			Source:           s.kind,
		}
		// No dedicated short description column: reuse the title so the
		// record still has the full searchable surface.
		if cols.shortDescription < 0 {
			record.ShortDescription = record.Title
		}
		corpus.Records = append(corpus.Records, record)
	}

	return corpus, nil
}

type columnIndexes struct {
	sectionNumber    int
	title            int
	fullLegalText    int
	shortDescription int
}

// resolveColumns applies the mapping to the header row. -1 means no
// candidate column is present; the field stays empty for every record.
func resolveColumns(header []string, mapping SchemaMapping) columnIndexes {
	find := func(candidates []string) int {
		for _, name := range candidates {
			for i, col := range header {
				if col == name {
					return i
				}
			}
		}
		return -1
	}

	cols := columnIndexes{
		sectionNumber:    find(mapping.SectionNumber),
		title:            find(mapping.Title),
		fullLegalText:    find(mapping.FullLegalText),
		shortDescription: find(mapping.ShortDescription),
	}

	if cols.title < 0 {
		log.Printf("Warning: no title column matched %v in header %v", mapping.Title, header)
	}

	return cols
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
