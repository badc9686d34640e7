package models

// CodeKind identifies which statutory code a record belongs to
type CodeKind string

const (
	CodeIPC CodeKind = "IPC"
	CodeBNS CodeKind = "BNS"
)

// StatuteRecord is the canonical shape of one statutory section.
// All text fields are non-nil; the loader coerces missing values to ""
// so every record has a searchable text surface.
type StatuteRecord struct {
	SectionNumber    string   `json:"section_number"`
	Title            string   `json:"title"`
	FullLegalText    string   `json:"full_legal_text"`
	ShortDescription string   `json:"short_description"`
	Source           CodeKind `json:"source"`
}

// SearchText returns the concatenated text surface used for similarity ranking
func (r StatuteRecord) SearchText() string {
	return r.Title + " " + r.ShortDescription + " " + r.FullLegalText
}

// StatuteCorpus is an ordered, read-only sequence of sections from one code.
// An absent or unloadable source is represented as an empty corpus, never an
// error: retrieval against it returns no matches.
type StatuteCorpus struct {
	Kind    CodeKind
	Records []StatuteRecord
}

// Empty reports whether the corpus holds no records
func (c StatuteCorpus) Empty() bool {
	return len(c.Records) == 0
}

// QueryContext carries the original query together with the normalized form.
// RefinedText falls back to RawText when normalization fails.
type QueryContext struct {
	RawText          string `json:"raw_text"`
	DetectedLanguage string `json:"detected_language"`
	RefinedText      string `json:"refined_text"`
}

// RankedMatch pairs a corpus record with its similarity score in [0,1]
type RankedMatch struct {
	Record StatuteRecord `json:"record"`
	Score  float64       `json:"score"`
}

// EmptyReason explains why a retrieval result carries no matches, so callers
// can tell "nothing relevant" apart from "ranking could not run at all".
type EmptyReason string

const (
	EmptyReasonNone      EmptyReason = ""
	EmptyCorpus          EmptyReason = "empty_corpus"
	EmptyVocabulary      EmptyReason = "empty_vocabulary"
	EmptyZeroQueryVector EmptyReason = "zero_query_vector"
	EmptyBelowScoreFloor EmptyReason = "below_score_floor"
)

// RetrievalResult holds the top matches for one corpus, ordered by
// descending score, capped at top-k and filtered by the relevance floor.
type RetrievalResult struct {
	Kind    CodeKind      `json:"code_kind"`
	Matches []RankedMatch `json:"matches"`
	Reason  EmptyReason   `json:"reason,omitempty"`
}
