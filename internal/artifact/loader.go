package artifact

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/domain"
)

// Loader caches a deserialized bundle for a fixed window and guards against
// duplicate concurrent loads. A caller arriving while another load is in
// flight waits on the in-flight channel with a bounded timeout instead of
// triggering a second deserialization pass; on timeout it is told loading
// failed and may retry the whole flow later.
type Loader[B any] struct {
	read        func() (*B, error)
	usable      func(*B) bool
	ttl         time.Duration
	waitTimeout time.Duration
	log         *zap.Logger

	mu        sync.Mutex
	bundle    *B
	expiresAt time.Time
	inflight  chan struct{}
	loads     int
}

func NewLoader[B any](read func() (*B, error), usable func(*B) bool, ttl, waitTimeout time.Duration, log *zap.Logger) *Loader[B] {
	return &Loader[B]{
		read:        read,
		usable:      usable,
		ttl:         ttl,
		waitTimeout: waitTimeout,
		log:         log,
	}
}

// Load returns the cached bundle if still valid, otherwise performs (or waits
// for) a load. Only usable bundles are cached; an unusable read result yields
// ErrModelsUnavailable.
func (l *Loader[B]) Load() (*B, error) {
	l.mu.Lock()
	for {
		if l.bundle != nil && time.Now().Before(l.expiresAt) {
			b := l.bundle
			l.mu.Unlock()
			return b, nil
		}
		if l.inflight == nil {
			break
		}
		done := l.inflight
		l.mu.Unlock()
		select {
		case <-done:
		case <-time.After(l.waitTimeout):
			l.log.Warn("timed out waiting for in-flight model load")
			return nil, fmt.Errorf("waiting for model load: %w", domain.ErrModelsUnavailable)
		}
		l.mu.Lock()
	}

	done := make(chan struct{})
	l.inflight = done
	l.loads++
	l.mu.Unlock()

	b, err := l.read()

	l.mu.Lock()
	l.inflight = nil
	close(done)
	if err == nil && b != nil && l.usable(b) {
		l.bundle = b
		l.expiresAt = time.Now().Add(l.ttl)
		l.mu.Unlock()
		l.log.Info("model bundle loaded and cached", zap.Duration("ttl", l.ttl))
		return b, nil
	}
	l.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return nil, domain.ErrModelsUnavailable
}

// Loads reports how many read passes have run. Used to verify the
// at-most-once-per-window contract.
func (l *Loader[B]) Loads() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loads
}

// Invalidate drops the cached bundle so the next Load rereads from disk.
func (l *Loader[B]) Invalidate() {
	l.mu.Lock()
	l.bundle = nil
	l.mu.Unlock()
}
