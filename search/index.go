// Package search ranks statute corpora against free-text queries using
// TF-IDF weighted cosine similarity. Lexical rather than semantic similarity
// is deliberate: statutory titles and descriptions repeat exact legal
// terminology, and the result stays deterministic and explainable.
package search

import (
	"math"
	"sort"
	"strings"

	"legal-backend/models"
)

const (
	// DefaultTopK caps how many matches one corpus contributes
	DefaultTopK = 3

	// DefaultMinScore is the authoritative relevance floor. Matches below
	// it are dropped entirely, suppressing spurious hits from an unrelated
	// corpus; results are never padded back up to the cap.
	DefaultMinScore = 0.05
)

// Index is a precomputed TF-IDF vector space over one corpus. It is built
// once at load time and is immutable afterwards, so concurrent Rank calls
// need no coordination.
type Index struct {
	kind    models.CodeKind
	records []models.StatuteRecord
	vocab   map[string]int    // term -> term id
	idf     []float64         // term id -> inverse document frequency
	docVecs []map[int]float64 // per record, L2-normalized term weights
}

// NewIndex builds the vector space for a corpus. An empty corpus, or one
// whose text is all stopwords, yields a degenerate index that ranks to an
// empty result rather than failing.
func NewIndex(corpus models.StatuteCorpus) *Index {
	idx := &Index{
		kind:    corpus.Kind,
		records: corpus.Records,
		vocab:   make(map[string]int),
	}

	docTerms := make([]map[string]int, len(corpus.Records))
	for i, record := range corpus.Records {
		counts := make(map[string]int)
		for _, term := range tokenize(record.SearchText()) {
			counts[term]++
		}
		docTerms[i] = counts
		for term := range counts {
			if _, ok := idx.vocab[term]; !ok {
				idx.vocab[term] = len(idx.vocab)
			}
		}
	}

	if len(idx.vocab) == 0 {
		return idx
	}

	// Smoothed idf: every term behaves as if seen in one extra document,
	// keeping weights finite and strictly positive.
	df := make([]int, len(idx.vocab))
	for _, counts := range docTerms {
		for term := range counts {
			df[idx.vocab[term]]++
		}
	}
	n := float64(len(corpus.Records))
	idx.idf = make([]float64, len(idx.vocab))
	for id, count := range df {
		idx.idf[id] = math.Log((1+n)/(1+float64(count))) + 1
	}

	idx.docVecs = make([]map[int]float64, len(corpus.Records))
	for i, counts := range docTerms {
		vec := make(map[int]float64, len(counts))
		for term, count := range counts {
			id := idx.vocab[term]
			vec[id] = float64(count) * idx.idf[id]
		}
		normalize(vec)
		idx.docVecs[i] = vec
	}

	return idx
}

// Rank projects the query into the vector space and returns the top matches
// ordered by descending cosine similarity. Both the count cap and the score
// floor apply; ties keep original corpus order. Degenerate inputs yield an
// empty result carrying the reason, never an error.
func (idx *Index) Rank(query string, topK int, minScore float64) models.RetrievalResult {
	result := models.RetrievalResult{Kind: idx.kind, Matches: []models.RankedMatch{}}

	if len(idx.records) == 0 {
		result.Reason = models.EmptyCorpus
		return result
	}
	if len(idx.vocab) == 0 {
		result.Reason = models.EmptyVocabulary
		return result
	}

	queryVec := make(map[int]float64)
	for _, term := range tokenize(query) {
		if id, ok := idx.vocab[term]; ok {
			// Out-of-vocabulary terms contribute zero weight
			queryVec[id] += idx.idf[id]
		}
	}
	if len(queryVec) == 0 {
		result.Reason = models.EmptyZeroQueryVector
		return result
	}
	normalize(queryVec)

	scored := make([]models.RankedMatch, len(idx.records))
	for i, record := range idx.records {
		scored[i] = models.RankedMatch{
			Record: record,
			Score:  dot(queryVec, idx.docVecs[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	for _, match := range scored {
		if match.Score >= minScore {
			result.Matches = append(result.Matches, match)
		}
	}
	if len(result.Matches) == 0 {
		result.Reason = models.EmptyBelowScoreFloor
	}

	return result
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping
// stopwords and single-character fragments
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})

	terms := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) >= 2 && !stopwords[word] {
			terms = append(terms, word)
		}
	}
	return terms
}

func normalize(vec map[int]float64) {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	for id := range vec {
		vec[id] /= norm
	}
}

// dot computes cosine similarity of two already-normalized sparse vectors.
// Iterates the smaller map.
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for id, v := range a {
		sum += v * b[id]
	}
	return sum
}
