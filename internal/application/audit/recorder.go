// Package audit appends the trail of state-changing actions.
package audit

import (
	"context"

	"issuehub/internal/domain/audit"
	"issuehub/internal/shared/logger"
)

// Recorder appends audit entries after the triggering mutation has committed.
// Appends are best-effort: a failed write is logged and never fails the
// enclosing business operation.
type Recorder struct {
	entries audit.Repository
	logger  logger.Interface
}

func NewRecorder(entries audit.Repository, logger logger.Interface) *Recorder {
	return &Recorder{entries: entries, logger: logger}
}

// Record appends one entry. actorID and entityID may be nil.
func (r *Recorder) Record(ctx context.Context, actorID *uint, action, entityType string, entityID *uint, metadata map[string]any) {
	entry, err := audit.NewEntry(actorID, action, entityType, entityID, metadata)
	if err != nil {
		r.logger.Warnw("invalid audit entry", "action", action, "entity_type", entityType, "error", err)
		return
	}
	if err := r.entries.Append(ctx, entry); err != nil {
		r.logger.Warnw("failed to append audit entry", "action", action, "entity_type", entityType, "error", err)
	}
}
