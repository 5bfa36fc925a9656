package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	mock_audit "github.com/FarmX-org/FarmX-mobile/internal/audit/mocks"
	mock_kafka "github.com/FarmX-org/FarmX-mobile/internal/kafka/mocks"
)

type collectingSink struct {
	mu      sync.Mutex
	batches [][]audit.Entry
}

func (s *collectingSink) Write(_ context.Context, batch []audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, batch)
	return nil
}

func (s *collectingSink) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.batches {
		n += len(b)
	}
	return n
}

func entry(orderID int64) audit.Entry {
	return audit.Entry{ID: uuid.New(), Method: "PUT", OrderID: orderID, Outcome: "ok"}
}

func TestManager_FlushesBySize(t *testing.T) {
	sink := &collectingSink{}
	m := audit.NewManager(sink, zap.NewNop(), 1, 2, time.Hour)
	m.Start(context.Background())

	ctx := context.Background()
	m.LogEntry(ctx, entry(1))
	m.LogEntry(ctx, entry(2))

	require.Eventually(t, func() bool { return sink.total() == 2 }, time.Second, 5*time.Millisecond)
	m.Shutdown(ctx)
}

func TestManager_FlushesByTimeout(t *testing.T) {
	sink := &collectingSink{}
	m := audit.NewManager(sink, zap.NewNop(), 2, 10, 20*time.Millisecond)
	m.Start(context.Background())
	defer m.Shutdown(context.Background())

	m.LogEntry(context.Background(), entry(7))

	require.Eventually(t, func() bool { return sink.total() == 1 }, time.Second, 5*time.Millisecond)
}

func TestManager_ShutdownDrainsQueue(t *testing.T) {
	sink := &collectingSink{}
	m := audit.NewManager(sink, zap.NewNop(), 1, 100, time.Hour)
	m.Start(context.Background())

	for i := int64(1); i <= 5; i++ {
		m.LogEntry(context.Background(), entry(i))
	}
	m.Shutdown(context.Background())

	assert.Equal(t, 5, sink.total())
}

func TestManager_AfterShutdownWritesDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mock_audit.NewMockSink(ctrl)

	m := audit.NewManager(sink, zap.NewNop(), 1, 10, time.Hour)
	m.Start(context.Background())
	m.Shutdown(context.Background())

	late := entry(42)
	sink.EXPECT().
		Write(gomock.Any(), []audit.Entry{late}).
		Return(errors.New("disk full"))

	m.LogEntry(context.Background(), late)
}

func TestManager_ContextCancelStops(t *testing.T) {
	sink := &collectingSink{}
	ctx, cancel := context.WithCancel(context.Background())
	m := audit.NewManager(sink, zap.NewNop(), 1, 100, time.Hour)
	m.Start(ctx)

	m.LogEntry(context.Background(), entry(3))
	cancel()

	require.Eventually(t, func() bool { return sink.total() == 1 }, time.Second, 5*time.Millisecond)
}

func TestProducerSink_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mock_kafka.NewMockProducer(ctrl)
	sink := audit.NewProducerSink(producer, "farmx_audit")

	e := entry(9)
	e.NewStatus = "READY"
	producer.EXPECT().
		SendMessage(gomock.Any(), "farmx_audit", []byte(e.ID.String()), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, value []byte) error {
			var got audit.Entry
			require.NoError(t, json.Unmarshal(value, &got))
			assert.Equal(t, int64(9), got.OrderID)
			assert.Equal(t, "READY", got.NewStatus)
			return nil
		})
	failing := entry(10)
	producer.EXPECT().
		SendMessage(gomock.Any(), "farmx_audit", []byte(failing.ID.String()), gomock.Any()).
		Return(errors.New("broker down"))

	err := sink.Write(context.Background(), []audit.Entry{e, failing})
	assert.EqualError(t, err, "broker down")
}

func TestMultiSink_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_audit.NewMockSink(ctrl)
	second := mock_audit.NewMockSink(ctrl)

	batch := []audit.Entry{entry(1)}
	first.EXPECT().Write(gomock.Any(), batch).Return(errors.New("first failed"))
	second.EXPECT().Write(gomock.Any(), batch).Return(nil)

	err := audit.MultiSink{first, second}.Write(context.Background(), batch)
	assert.EqualError(t, err, "first failed")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", audit.Truncate([]byte("short")))

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}
	got := audit.Truncate(long)
	assert.Len(t, got, 515)
	assert.Equal(t, "...", got[512:])
}
