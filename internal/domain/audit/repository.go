package audit

import "context"

// Repository is append-only: entries are never mutated or deleted.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
}
