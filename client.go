package noterank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkwell-market/noterank/internal/db"
	dbRedis "github.com/inkwell-market/noterank/internal/db/redis"
	"github.com/inkwell-market/noterank/internal/ranking"
	affinityrepo "github.com/inkwell-market/noterank/internal/repository/affinity"
	engagementrepo "github.com/inkwell-market/noterank/internal/repository/engagement"
	historyrepo "github.com/inkwell-market/noterank/internal/repository/history"
	noterepo "github.com/inkwell-market/noterank/internal/repository/note"
	cataloguc "github.com/inkwell-market/noterank/internal/usecase/catalog"
	engagementuc "github.com/inkwell-market/noterank/internal/usecase/engagement"
	historyuc "github.com/inkwell-market/noterank/internal/usecase/history"
	personalizationuc "github.com/inkwell-market/noterank/internal/usecase/personalization"
	searchuc "github.com/inkwell-market/noterank/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the noterank SDK entry point: an in-process composition of the
// ranking engine and its Redis-backed collaborators.
type Client struct {
	store         db.Store
	catalogSvc    *cataloguc.Service
	searchSvc     *searchuc.Service
	engagementSvc *engagementuc.Service
	historySvc    *historyuc.Service
}

// New creates a noterank Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		weights: ranking.DefaultWeights,
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("noterank: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.database,
	})
	if err != nil {
		return nil, fmt.Errorf("noterank: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("noterank: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	notes := noterepo.New(store).WithPrefix(cfg.keyPrefix)
	counters := engagementrepo.New(store).WithPrefix(cfg.keyPrefix)
	affinity := affinityrepo.New(store).WithPrefix(cfg.keyPrefix)
	searches := historyrepo.New(store).WithPrefix(cfg.keyPrefix)

	personalSvc := personalizationuc.New(affinity)
	historySvc := historyuc.New(searches)
	if cfg.historyCapacity > 0 {
		historySvc = historySvc.WithCapacity(cfg.historyCapacity)
	}

	catalogSvc := cataloguc.New(notes, counters)
	if cfg.defaultPageSize > 0 || cfg.maxPageSize > 0 {
		catalogSvc = catalogSvc.WithPagination(cfg.defaultPageSize, cfg.maxPageSize)
	}

	engine := ranking.NewEngine(cfg.weights)
	searchSvc := searchuc.New(engine, notes, counters, personalSvc, historySvc)

	return &Client{
		store:         store,
		catalogSvc:    catalogSvc,
		searchSvc:     searchSvc,
		engagementSvc: engagementuc.New(counters, notes, personalSvc),
		historySvc:    historySvc,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Notes returns the note catalog service.
func (c *Client) Notes() *NotesService {
	return &NotesService{svc: c.catalogSvc}
}

// Search returns the ranking/search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc}
}

// Events returns the engagement recording service.
func (c *Client) Events() *EventsService {
	return &EventsService{svc: c.engagementSvc}
}

// History returns the recent-searches service.
func (c *Client) History() *HistoryService {
	return &HistoryService{svc: c.historySvc}
}
