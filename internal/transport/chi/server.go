package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/inkwell-market/noterank/internal/domain"
	"github.com/inkwell-market/noterank/internal/domain/note"
	"github.com/inkwell-market/noterank/internal/domain/search/filter"
	"github.com/inkwell-market/noterank/internal/domain/search/request"
	"github.com/inkwell-market/noterank/internal/domain/search/result"
	"github.com/inkwell-market/noterank/internal/domain/search/sortkey"
	cataloguc "github.com/inkwell-market/noterank/internal/usecase/catalog"
	engagementuc "github.com/inkwell-market/noterank/internal/usecase/engagement"
	healthuc "github.com/inkwell-market/noterank/internal/usecase/health"
	historyuc "github.com/inkwell-market/noterank/internal/usecase/history"
	searchuc "github.com/inkwell-market/noterank/internal/usecase/search"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "note_not_found"
	codeConflict         = "conflict"
	codeSuperseded       = "superseded"
	codeInternal         = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the ranking service over HTTP.
type Server struct {
	catalog       *cataloguc.Service
	search        *searchuc.Service
	engagement    *engagementuc.Service
	history       *historyuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	search *searchuc.Service,
	engagement *engagementuc.Service,
	history *historyuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:    catalog,
		search:     search,
		engagement: engagement,
		history:    history,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNoteNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeConflict),
		sentinelHandler(domain.ErrInvalidNote, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrUserRequired, http.StatusBadRequest, codeBadRequest),
		sentinelHandler(domain.ErrSuperseded, http.StatusConflict, codeSuperseded),
	}
	return s
}

// Routes mounts all handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.healthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/notes", func(r chi.Router) {
		r.Post("/", s.createNote)
		r.Get("/", s.listNotes)
		r.Get("/{id}", s.getNote)
		r.Delete("/{id}", s.deleteNote)
		r.Post("/{id}/events", s.recordEvent)
	})

	r.Post("/search", s.runSearch)
	r.Get("/trending", s.trending)

	r.Route("/history/{userID}", func(r chi.Router) {
		r.Get("/", s.recentSearches)
		r.Delete("/", s.clearHistory)
	})
}

// --- note catalog ---

type notePayload struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author,omitempty"`
	Category        string   `json:"category,omitempty"`
	Preview         string   `json:"preview,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Price           float64  `json:"price"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	PurchaseCount   int      `json:"purchase_count"`
	ViewCount       int      `json:"view_count"`
	CreatedAt       string   `json:"created_at,omitempty"` // RFC 3339
	VerifiedCreator bool     `json:"verified_creator"`
	CreatorTrust    float64  `json:"creator_trust"`
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var req notePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdAt := time.Time{}
	if req.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "created_at must be RFC 3339")
			return
		}
		createdAt = parsed
	}

	n, err := note.New(
		req.ID, req.Title, req.Author, req.Category, req.Preview,
		req.Tags, req.Price, req.Rating,
		req.ReviewCount, req.PurchaseCount, req.ViewCount,
		createdAt, req.VerifiedCreator, req.CreatorTrust,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	created, err := s.catalog.Upsert(r.Context(), &n)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, noteToPayload(&n))
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	n, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, noteToPayload(&n))
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type noteListResponse struct {
	Items      []notePayload `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	notes, next, err := s.catalog.List(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]notePayload, len(notes))
	for i := range notes {
		items[i] = noteToPayload(&notes[i])
	}
	writeJSON(w, http.StatusOK, noteListResponse{Items: items, NextCursor: next})
}

// --- search ---

type searchPayload struct {
	Query     string   `json:"query"`
	Category  string   `json:"category,omitempty"`
	MinRating float64  `json:"min_rating,omitempty"`
	MaxPrice  *float64 `json:"max_price,omitempty"`
	Sort      string   `json:"sort,omitempty"`
	PageSize  int      `json:"page_size,omitempty"`
	UserID    string   `json:"user_id,omitempty"`
}

type scoredPayload struct {
	Note              notePayload `json:"note"`
	ContentSimilarity float64     `json:"content_similarity"`
	Popularity        float64     `json:"popularity"`
	Recency           float64     `json:"recency"`
	Creator           float64     `json:"creator"`
	Personalization   float64     `json:"personalization"`
	Final             float64     `json:"final"`
}

type searchResponse struct {
	Results        []scoredPayload `json:"results"`
	Fallback       []scoredPayload `json:"fallback,omitempty"`
	FallbackReason string          `json:"fallback_reason,omitempty"`
}

func (s *Server) runSearch(w http.ResponseWriter, r *http.Request) {
	var req searchPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	filters, err := filter.New(req.Category, req.MinRating, req.MaxPrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	domReq, err := request.New(req.Query, filters, sortkey.Key(req.Sort), req.PageSize, req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	resp, err := s.search.Search(r.Context(), &domReq)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results:        scoredToPayload(resp.Results),
		Fallback:       scoredToPayload(resp.Fallback),
		FallbackReason: string(resp.FallbackReason),
	})
}

type trendingResponse struct {
	Items []scoredPayload `json:"items"`
}

func (s *Server) trending(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	items, err := s.search.Trending(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trendingResponse{Items: scoredToPayload(items)})
}

// --- engagement ---

type eventPayload struct {
	Type   string `json:"type"`
	UserID string `json:"user_id,omitempty"`
}

type eventResponse struct {
	NoteID string `json:"note_id"`
	Type   string `json:"type"`
	Count  int    `json:"count"`
}

func (s *Server) recordEvent(w http.ResponseWriter, r *http.Request) {
	var req eventPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	eventType := engagementuc.EventType(req.Type)
	if !eventType.IsValid() {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "type must be \"view\" or \"purchase\"")
		return
	}

	noteID := chi.URLParam(r, "id")
	count, err := s.engagement.Record(r.Context(), eventType, noteID, req.UserID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{NoteID: noteID, Type: req.Type, Count: count})
}

// --- history ---

type historyResponse struct {
	UserID  string   `json:"user_id"`
	Queries []string `json:"queries"`
}

func (s *Server) recentSearches(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	queries, err := s.history.Recent(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if queries == nil {
		queries = []string{}
	}
	writeJSON(w, http.StatusOK, historyResponse{UserID: userID, Queries: queries})
}

func (s *Server) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context(), chi.URLParam(r, "userID")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- health ---

type healthResponse struct {
	Status     string            `json:"status"`
	Checks     map[string]string `json:"checks"`
	CorpusSize int               `json:"corpus_size"`
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{
		Status:     string(report.Status),
		Checks:     checks,
		CorpusSize: report.CorpusSize,
	})
}

// --- shared helpers ---

func noteToPayload(n *note.Note) notePayload {
	return notePayload{
		ID:              n.ID(),
		Title:           n.Title(),
		Author:          n.Author(),
		Category:        n.Category(),
		Preview:         n.Preview(),
		Tags:            n.Tags(),
		Price:           n.Price(),
		Rating:          n.Rating(),
		ReviewCount:     n.ReviewCount(),
		PurchaseCount:   n.PurchaseCount(),
		ViewCount:       n.ViewCount(),
		CreatedAt:       n.CreatedAt().Format(time.RFC3339),
		VerifiedCreator: n.VerifiedCreator(),
		CreatorTrust:    n.CreatorTrust(),
	}
}

func scoredToPayload(results []result.Result) []scoredPayload {
	out := make([]scoredPayload, len(results))
	for i := range results {
		b := results[i].Breakdown()
		out[i] = scoredPayload{
			Note:              noteToPayload(results[i].Note()),
			ContentSimilarity: b.ContentSimilarity,
			Popularity:        b.Popularity,
			Recency:           b.Recency,
			Creator:           b.Creator,
			Personalization:   b.Personalization,
			Final:             b.Final,
		}
	}
	return out
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
