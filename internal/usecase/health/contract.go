package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CorpusCounter reports catalog size for the readiness report.
type CorpusCounter interface {
	Count(ctx context.Context) (int, error)
}
