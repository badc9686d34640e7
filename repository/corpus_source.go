package repository

import (
	"context"

	"legal-backend/models"
)

// CorpusSource produces a StatuteCorpus for one code. A source that cannot
// load returns an empty corpus together with the diagnostic; the caller logs
// the diagnostic and serves the empty corpus.
type CorpusSource interface {
	Load(ctx context.Context) (models.StatuteCorpus, error)
}

// SchemaMapping declares, per canonical field, the source column names to
// try in priority order. The first column present in the file wins.
type SchemaMapping struct {
	SectionNumber    []string
	Title            []string
	FullLegalText    []string
	ShortDescription []string
}

// IPCMapping matches the IPC file, which already carries canonical names
var IPCMapping = SchemaMapping{
	SectionNumber:    []string{"section_number"},
	Title:            []string{"title"},
	FullLegalText:    []string{"full_legal_text"},
	ShortDescription: []string{"short_description"},
}

// BNSMapping matches the BNS file. "Section _name" carries a stray space in
// the published dataset; the clean spelling is tried second.
var BNSMapping = SchemaMapping{
	SectionNumber:    []string{"Section"},
	Title:            []string{"Section _name", "Section_name"},
	FullLegalText:    []string{"Description"},
	ShortDescription: []string{"short_description"},
}
