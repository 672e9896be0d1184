package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

const (
	// DefaultDebounceWindow collects events for the same product within this duration
	DefaultDebounceWindow = 1 * time.Second

	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
	attemptTimeout = 5 * time.Second
)

// ProductReconciler repairs derived pricing for one product
type ProductReconciler interface {
	Reconcile(ctx context.Context, productID uuid.UUID) (bool, error)
}

// ReconcileWorker consumes product events and reconciles derived pricing
// once per burst of events for the same product
type ReconcileWorker struct {
	reconciler ProductReconciler
	debounce   time.Duration
	logger     *logger.Logger

	mu             sync.Mutex
	pendingUpdates map[uuid.UUID]*pendingUpdate
	shutdownCh     chan struct{}
	wg             sync.WaitGroup
	ctx            context.Context
	cancel         context.CancelFunc
}

type pendingUpdate struct {
	timestamp time.Time
	timer     *time.Timer
}

// NewReconcileWorker creates a new reconcile worker. A non-positive
// debounce falls back to DefaultDebounceWindow.
func NewReconcileWorker(reconciler ProductReconciler, debounce time.Duration, logger *logger.Logger) *ReconcileWorker {
	if debounce <= 0 {
		debounce = DefaultDebounceWindow
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &ReconcileWorker{
		reconciler:     reconciler,
		debounce:       debounce,
		logger:         logger,
		pendingUpdates: make(map[uuid.UUID]*pendingUpdate),
		shutdownCh:     make(chan struct{}),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// HandleEvent decodes a product event and schedules a reconcile
func (w *ReconcileWorker) HandleEvent(data []byte) error {
	var event domain.ProductEvent
	if err := json.Unmarshal(data, &event); err != nil {
		w.logger.Error("Failed to unmarshal product event", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.ProductID == uuid.Nil {
		return fmt.Errorf("product event %q without product_id", event.EventType)
	}

	w.logger.WithFields(map[string]any{
		"type":       event.EventType,
		"product_id": event.ProductID.String(),
		"timestamp":  event.Timestamp,
	}).Info("Received product event")

	if event.EventType == domain.ProductDeleted {
		w.cancelPending(event.ProductID)
		return nil
	}

	w.scheduleUpdate(event.ProductID, event.Timestamp)
	return nil
}

// scheduleUpdate debounces: several events for one product inside the
// window collapse into a single reconcile
func (w *ReconcileWorker) scheduleUpdate(productID uuid.UUID, timestamp time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdownCh:
		w.logger.Info("Worker shutting down, ignoring new event")
		return
	default:
	}

	existing, found := w.pendingUpdates[productID]
	if found {
		if timestamp.Before(existing.timestamp) {
			w.logger.WithFields(map[string]any{
				"product_id":  productID.String(),
				"existing_ts": existing.timestamp,
				"event_ts":    timestamp,
			}).Debug("Ignoring stale event")
			return
		}

		if !existing.timer.Stop() {
			// timer already fired; its run owns the wait group slot
			w.wg.Add(1)
		}
		w.logger.WithFields(map[string]any{
			"product_id": productID.String(),
		}).Debug("Debouncing: resetting timer for product")
	} else {
		w.wg.Add(1)
	}

	update := &pendingUpdate{timestamp: timestamp}
	update.timer = time.AfterFunc(w.debounce, func() {
		w.processUpdate(productID, update)
	})
	w.pendingUpdates[productID] = update
}

func (w *ReconcileWorker) cancelPending(productID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.pendingUpdates[productID]; ok {
		if existing.timer.Stop() {
			w.wg.Done()
		}
		delete(w.pendingUpdates, productID)
	}
}

// processUpdate runs the reconcile with retry and exponential backoff
func (w *ReconcileWorker) processUpdate(productID uuid.UUID, update *pendingUpdate) {
	defer w.wg.Done()

	w.mu.Lock()
	if w.pendingUpdates[productID] == update {
		delete(w.pendingUpdates, productID)
	}
	w.mu.Unlock()

	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			w.logger.WithFields(map[string]any{
				"product_id": productID.String(),
				"attempt":    attempt + 1,
				"backoff_ms": backoff.Milliseconds(),
			}).Warn("Retrying reconcile")

			select {
			case <-time.After(backoff):
			case <-w.ctx.Done():
				w.logger.Info("Worker context cancelled, aborting retry")
				return
			}

			backoff *= 2
		}

		ctx, cancel := context.WithTimeout(w.ctx, attemptTimeout)
		_, err := w.reconciler.Reconcile(ctx, productID)
		cancel()

		if err == nil {
			return
		}

		lastErr = err
		w.logger.WithFields(map[string]any{
			"product_id": productID.String(),
			"attempt":    attempt + 1,
		}).Error("Failed to reconcile product", err)
	}

	w.logger.WithFields(map[string]any{
		"product_id":  productID.String(),
		"max_retries": maxRetries,
	}).Error("Reconcile failed after all retries", lastErr)
}

// Shutdown cancels pending timers and waits for in-flight reconciles
func (w *ReconcileWorker) Shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down reconcile worker...")

	close(w.shutdownCh)
	w.cancel()

	w.mu.Lock()
	cancelled := 0
	for id, update := range w.pendingUpdates {
		if update.timer.Stop() {
			w.wg.Done()
			cancelled++
		}
		delete(w.pendingUpdates, id)
	}
	w.mu.Unlock()

	w.logger.WithFields(map[string]any{
		"cancelled_updates": cancelled,
	}).Info("Cancelled pending updates")

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("All in-flight updates completed")
		return nil
	case <-ctx.Done():
		w.logger.Warn("Shutdown timeout reached, forcing exit")
		return ctx.Err()
	}
}

// GetPendingCount returns the number of debounced products not yet processed
func (w *ReconcileWorker) GetPendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pendingUpdates)
}
