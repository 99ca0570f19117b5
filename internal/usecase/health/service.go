package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status     Status
	Checks     map[string]CheckResult
	CorpusSize int
}

// Service coordinates health checks.
type Service struct {
	db     DBPinger
	corpus CorpusCounter
}

// New creates a Service. corpus may be nil.
func New(db DBPinger, corpus CorpusCounter) *Service {
	return &Service{db: db, corpus: corpus}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	size := 0
	if s.corpus != nil {
		n, err := s.corpus.Count(ctx)
		if err != nil {
			checks["corpus"] = CheckError
		} else {
			checks["corpus"] = CheckOK
			size = n
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, CorpusSize: size}
}
