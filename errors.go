package noterank

import "github.com/inkwell-market/noterank/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNoteNotFound   = domain.ErrNoteNotFound
	ErrAlreadyExists  = domain.ErrAlreadyExists
	ErrInvalidNote    = domain.ErrInvalidNote
	ErrInvalidFilter  = domain.ErrInvalidFilter
	ErrInvalidRequest = domain.ErrInvalidRequest
	ErrUserRequired   = domain.ErrUserRequired
	ErrSuperseded     = domain.ErrSuperseded
)
