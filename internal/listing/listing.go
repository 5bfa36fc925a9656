package listing

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

type State int

const (
	Loading State = iota
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	MsgLoadFailed     = "Failed to load orders"
	MsgFarmLoadFailed = "Failed to load farm orders"
	MsgInvalidFarmID  = "Invalid farm ID"
	MsgNoFarmOrders   = "No orders found for this farm."
)

var ErrInvalidFarmID = errors.New("invalid farm id")

// OrdersAPI is the read side of the backend client.
type OrdersAPI interface {
	ConsumerOrders(ctx context.Context) ([]orders.Order, error)
	FarmOrders(ctx context.Context, farmID int64) ([]orders.FarmOrder, error)
	HandlerOrders(ctx context.Context) ([]orders.HandlerOrder, error)
}

type fetchFunc[T orders.View] func(ctx context.Context) ([]T, error)

// Listing loads the orders of one role endpoint. It starts in Loading and
// moves to Loaded or Failed after every Load; failures keep no partial data.
type Listing[T orders.View] struct {
	fetch     fetchFunc[T]
	failMsg   string
	emptyMsg  string
	invalid   error
	logger    *zap.Logger
	snapshot  *Snapshot[T]
	onRefresh func([]T)

	mu      sync.RWMutex
	state   State
	message string
}

func newListing[T orders.View](fetch fetchFunc[T], failMsg string, logger *zap.Logger) *Listing[T] {
	return &Listing[T]{
		fetch:    fetch,
		failMsg:  failMsg,
		logger:   logger,
		snapshot: NewSnapshot[T](),
		state:    Loading,
	}
}

func ForConsumer(api OrdersAPI, logger *zap.Logger) *Listing[orders.Order] {
	return newListing[orders.Order](api.ConsumerOrders, MsgLoadFailed, scoped(logger, zap.String("listing", "consumer")))
}

func ForHandler(api OrdersAPI, logger *zap.Logger) *Listing[orders.HandlerOrder] {
	return newListing[orders.HandlerOrder](api.HandlerOrders, MsgLoadFailed, scoped(logger, zap.String("listing", "handler")))
}

// ForFarm lists one farm's orders. farmID comes from user input; a value
// that is not a positive integer makes every Load fail without a request.
func ForFarm(api OrdersAPI, farmID string, logger *zap.Logger) *Listing[orders.FarmOrder] {
	id, err := strconv.ParseInt(strings.TrimSpace(farmID), 10, 64)
	l := newListing[orders.FarmOrder](func(ctx context.Context) ([]orders.FarmOrder, error) {
		return api.FarmOrders(ctx, id)
	}, MsgFarmLoadFailed, scoped(logger, zap.String("listing", "farm"), zap.String("farm_id", farmID)))
	l.emptyMsg = MsgNoFarmOrders
	if err != nil || id <= 0 {
		l.invalid = ErrInvalidFarmID
	}
	return l
}

func scoped(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.With(fields...)
}

// OnRefresh registers a callback run after every successful load.
func (l *Listing[T]) OnRefresh(fn func([]T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onRefresh = fn
}

// Load issues one read and replaces the listing contents.
func (l *Listing[T]) Load(ctx context.Context) error {
	if l.invalid != nil {
		l.fail(MsgInvalidFarmID)
		return l.invalid
	}

	l.mu.Lock()
	l.state = Loading
	l.message = ""
	l.mu.Unlock()

	list, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("Failed to load orders", zap.Error(err))
		l.fail(l.failMsg)
		return err
	}

	l.snapshot.Replace(list)
	l.mu.Lock()
	l.state = Loaded
	cb := l.onRefresh
	l.mu.Unlock()

	l.logger.Debug("Orders loaded", zap.Int("count", len(list)))
	if cb != nil {
		cb(l.snapshot.All())
	}
	return nil
}

// Refresh reloads the listing; cards call it after a successful mutation.
func (l *Listing[T]) Refresh(ctx context.Context) error {
	return l.Load(ctx)
}

func (l *Listing[T]) fail(msg string) {
	l.snapshot.Clear()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = Failed
	l.message = msg
}

func (l *Listing[T]) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Message is the failure text, or the empty-listing text where one applies.
func (l *Listing[T]) Message() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.state == Loaded && l.emptyMsg != "" && l.snapshot.Len() == 0 {
		return l.emptyMsg
	}
	return l.message
}

func (l *Listing[T]) Orders() []T {
	return l.snapshot.All()
}

func (l *Listing[T]) Get(id int64) (T, bool) {
	return l.snapshot.Get(id)
}
