package search

import (
	"context"

	"legal-backend/models"

	"golang.org/x/sync/errgroup"
)

// Retriever ranks one query against the two fixed corpora. The corpora are
// independent: emptiness or degeneracy of one never affects the other.
type Retriever struct {
	ipc      *Index
	bns      *Index
	topK     int
	minScore float64
}

// RetrieverOption is a functional option for Retriever
type RetrieverOption func(*Retriever)

// WithTopK overrides the per-corpus match cap
func WithTopK(topK int) RetrieverOption {
	return func(r *Retriever) {
		r.topK = topK
	}
}

// WithMinScore overrides the relevance floor
func WithMinScore(minScore float64) RetrieverOption {
	return func(r *Retriever) {
		r.minScore = minScore
	}
}

// NewRetriever creates a retriever over two prebuilt indexes
func NewRetriever(ipc, bns *Index, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		ipc:      ipc,
		bns:      bns,
		topK:     DefaultTopK,
		minScore: DefaultMinScore,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve ranks the query against both corpora. The two rankings share no
// state and run concurrently; Rank never returns an error so the group only
// propagates context cancellation.
func (r *Retriever) Retrieve(ctx context.Context, query string) (models.RetrievalResult, models.RetrievalResult) {
	var ipcResult, bnsResult models.RetrievalResult

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		ipcResult = r.ipc.Rank(query, r.topK, r.minScore)
		return nil
	})
	g.Go(func() error {
		bnsResult = r.bns.Rank(query, r.topK, r.minScore)
		return nil
	})
	_ = g.Wait()

	return ipcResult, bnsResult
}
