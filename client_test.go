package noterank

import (
	"testing"

	"github.com/inkwell-market/noterank/internal/ranking"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{weights: ranking.DefaultWeights}

	WithRedis("localhost:6379", "localhost:6380")(cfg)
	if len(cfg.addrs) != 2 || cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addrs = %v", cfg.addrs)
	}

	WithAuth("app", "secret")(cfg)
	if cfg.username != "app" || cfg.password != "secret" {
		t.Errorf("auth = %q/%q", cfg.username, cfg.password)
	}

	WithDatabase(3)(cfg)
	if cfg.database != 3 {
		t.Errorf("database = %d, want 3", cfg.database)
	}

	WithKeyPrefix("staging:")(cfg)
	if cfg.keyPrefix != "staging:" {
		t.Errorf("keyPrefix = %q", cfg.keyPrefix)
	}

	WithPagination(5, 25)(cfg)
	if cfg.defaultPageSize != 5 || cfg.maxPageSize != 25 {
		t.Errorf("pagination = %d/%d", cfg.defaultPageSize, cfg.maxPageSize)
	}

	WithHistoryCapacity(6)(cfg)
	if cfg.historyCapacity != 6 {
		t.Errorf("historyCapacity = %d, want 6", cfg.historyCapacity)
	}

	WithWeights(0.5, 0.2, 0.1, 0.1, 0.1)(cfg)
	if cfg.weights.ContentSimilarity != 0.5 || cfg.weights.Personalization != 0.1 {
		t.Errorf("weights = %+v", cfg.weights)
	}
}
