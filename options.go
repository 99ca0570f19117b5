package noterank

import "github.com/inkwell-market/noterank/internal/ranking"

// clientConfig accumulates SDK options.
type clientConfig struct {
	addrs           []string
	username        string
	password        string
	database        int
	keyPrefix       string
	defaultPageSize int
	maxPageSize     int
	historyCapacity int
	weights         ranking.Weights
}

// Option configures the Client.
type Option func(*clientConfig)

// WithRedis sets the Redis (or Valkey) connection addresses.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithAuth sets database credentials.
func WithAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDatabase selects the logical database index.
func WithDatabase(db int) Option {
	return func(c *clientConfig) { c.database = db }
}

// WithKeyPrefix overrides the storage key prefix (default "noterank:").
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) { c.keyPrefix = prefix }
}

// WithPagination overrides the catalog page sizes.
func WithPagination(defaultSize, maxSize int) Option {
	return func(c *clientConfig) {
		c.defaultPageSize = defaultSize
		c.maxPageSize = maxSize
	}
}

// WithHistoryCapacity overrides the recent-searches capacity (clamped to 5-10).
func WithHistoryCapacity(capacity int) Option {
	return func(c *clientConfig) { c.historyCapacity = capacity }
}

// WithWeights overrides the factor mix used to combine sub-scores into the
// final ranking score.
func WithWeights(content, popularity, recency, creator, personalization float64) Option {
	return func(c *clientConfig) {
		c.weights = ranking.Weights{
			ContentSimilarity: content,
			Popularity:        popularity,
			Recency:           recency,
			Creator:           creator,
			Personalization:   personalization,
		}
	}
}
