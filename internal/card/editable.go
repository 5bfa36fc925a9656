package card

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/api"
	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

// editable holds the status and time a farmer or handler is editing. The
// committed status is what gets displayed; draft is the unsaved selection.
type editable struct {
	mu        sync.Mutex
	committed orders.Status
	draft     orders.Status
	timeValue string
}

func newEditable(status orders.Status, serverTime string) editable {
	return editable{
		committed: status,
		draft:     status,
		timeValue: orders.EditableTime(serverTime),
	}
}

func (e *editable) Status() orders.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.committed
}

func (e *editable) Draft() orders.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

func (e *editable) SelectStatus(s orders.Status) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: %q", orders.ErrUnknownStatus, s)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = s
	return nil
}

func (e *editable) snapshot() (orders.Status, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft, e.timeValue
}

func (e *editable) setTime(t string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.timeValue = t
}

func (e *editable) time() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeValue
}

// settle commits the draft on success and discards it on failure.
func (e *editable) settle(ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ok {
		e.committed = e.draft
	} else {
		e.draft = e.committed
	}
}

type saveFunc func(ctx context.Context, id int64, status orders.Status, t string) error

func (e *editable) save(ctx context.Context, deps Deps, logger *zap.Logger, role string, id int64, send saveFunc) error {
	status, t := e.snapshot()

	if err := send(ctx, id, status, t); err != nil {
		e.settle(false)
		metrics.StatusUpdatesTotal.WithLabelValues(role, "failure").Inc()
		logger.Warn("Status update failed", zap.Int64("order_id", id), zap.Stringer("status", status), zap.Error(err))
		deps.Notifier.Error(titleUpdateFailed, api.Message(err, msgUpdateFallback))
		return err
	}

	e.settle(true)
	metrics.StatusUpdatesTotal.WithLabelValues(role, "success").Inc()
	logger.Info("Status updated", zap.Int64("order_id", id), zap.Stringer("status", status))
	deps.Notifier.Success(titleUpdated, fmt.Sprintf("Order #%d is now %s", id, status))
	deps.refresh(ctx, logger)
	return nil
}
