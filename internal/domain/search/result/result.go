package result

import "github.com/inkwell-market/noterank/internal/domain/note"

// Breakdown holds the per-factor sub-scores behind a final score.
// Every field is in [0,1] except Creator, which may exceed 1 for verified
// creators (the trust bonus is deliberately not clamped).
type Breakdown struct {
	ContentSimilarity float64
	Popularity        float64
	Recency           float64
	Creator           float64
	Personalization   float64
	Final             float64
}

// Result is a single scored search hit.
// Created fresh per request, never persisted.
type Result struct {
	note      note.Note
	breakdown Breakdown
}

// New creates a scored result.
func New(n note.Note, b Breakdown) Result {
	return Result{note: n, breakdown: b}
}

// Note returns the underlying note.
func (r *Result) Note() *note.Note { return &r.note }

// Breakdown returns the sub-score breakdown.
func (r *Result) Breakdown() Breakdown { return r.breakdown }

// Final returns the combined weighted score.
func (r *Result) Final() float64 { return r.breakdown.Final }

// ContentSimilarity returns the text-relevance sub-score.
func (r *Result) ContentSimilarity() float64 { return r.breakdown.ContentSimilarity }

// Popularity returns the popularity sub-score.
func (r *Result) Popularity() float64 { return r.breakdown.Popularity }
