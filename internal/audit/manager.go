//go:generate mockgen -source ./manager.go -destination=./mocks/manager.go -package=mock_audit
package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
)

// Sink receives flushed batches.
type Sink interface {
	Write(ctx context.Context, batch []Entry) error
}

// Manager batches entries by size or timeout and hands the batches to a small
// worker pool that writes them to the sink.
type Manager struct {
	sink         Sink
	logger       *zap.Logger
	workerCount  int
	batchSize    int
	timeout      time.Duration
	writeTimeout time.Duration

	inputChan  chan Entry
	batchChan  chan []Entry
	shutdownCh chan struct{}
	once       sync.Once

	closeMu sync.RWMutex
	closed  bool

	wg sync.WaitGroup
}

func NewManager(sink Sink, logger *zap.Logger, workerCount, batchSize int, timeout time.Duration) *Manager {
	if workerCount < 1 {
		workerCount = 1
	}
	if batchSize < 1 {
		batchSize = 1
	}
	return &Manager{
		sink:         sink,
		logger:       logger.Named("audit"),
		workerCount:  workerCount,
		batchSize:    batchSize,
		timeout:      timeout,
		writeTimeout: 5 * time.Second,
		inputChan:    make(chan Entry, workerCount*batchSize*2),
		batchChan:    make(chan []Entry, workerCount*2),
		shutdownCh:   make(chan struct{}),
	}
}

func (m *Manager) Start(ctx context.Context) {
	m.logger.Debug("Starting audit manager", zap.Int("workers", m.workerCount))
	m.wg.Add(1)
	go m.runAggregator()

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(i)
	}

	go m.monitorShutdown(ctx)
}

// LogEntry queues an entry. Once the manager is shut down, or when ctx ends
// before the queue accepts the entry, it is written straight to the sink.
func (m *Manager) LogEntry(ctx context.Context, entry Entry) {
	m.closeMu.RLock()
	defer m.closeMu.RUnlock()

	if m.closed {
		m.emergencyWrite(entry)
		return
	}

	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.emergencyWrite(entry)
	}
}

// Shutdown stops accepting entries, flushes what is queued and waits for the
// workers until ctx ends.
func (m *Manager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Debug("Initiating audit manager shutdown")

		m.closeMu.Lock()
		m.closed = true
		m.closeMu.Unlock()
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Debug("Audit manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("Audit manager shutdown interrupted")
		}
	})
}

func (m *Manager) monitorShutdown(ctx context.Context) {
	select {
	case <-ctx.Done():
		m.Shutdown(context.Background())
	case <-m.shutdownCh:
	}
}

func (m *Manager) runAggregator() {
	defer m.wg.Done()

	var (
		batch    []Entry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
		timeoutC = nil
	}

	defer func() {
		stopTimer()
		// Entries accepted before shutdown are still in the queue.
		for {
			select {
			case entry := <-m.inputChan:
				batch = append(batch, entry)
				if len(batch) >= m.batchSize {
					m.dispatchBatch(batch)
					batch = nil
				}
				continue
			default:
			}
			break
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				stopTimer()
				m.dispatchBatch(batch)
				batch = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *Manager) dispatchBatch(batch []Entry) {
	batchCopy := make([]Entry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.writeBatch(-1, batchCopy)
	}
}

func (m *Manager) runWorker(id int) {
	defer m.wg.Done()

	for batch := range m.batchChan {
		m.writeBatch(id, batch)
	}
}

func (m *Manager) emergencyWrite(entry Entry) {
	metrics.AuditEntriesDropped.Inc()
	m.writeBatch(-1, []Entry{entry})
}

func (m *Manager) writeBatch(workerID int, batch []Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), m.writeTimeout)
	defer cancel()

	if err := m.sink.Write(ctx, batch); err != nil {
		m.logger.Error("Failed to write audit batch",
			zap.Int("worker", workerID),
			zap.Int("size", len(batch)),
			zap.Error(err),
		)
	}
}
