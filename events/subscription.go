package events

import (
	"context"
	"sync"
)

// ISubscription is a single listener of a SubscriptionManager
type ISubscription interface {
	// Chan receives one value per notification. Notifications coalesce while unread.
	Chan() <-chan struct{}
	// Cancel unsubscribes and closes the channel. Safe for repeated calls
	Cancel()
	// Watch calls cb on every notification until parentCtx is done or the subscription is cancelled.
	// If callNow is true, cb is called once before returning.
	Watch(parentCtx context.Context, cb func(), callNow bool) ISubscription
}

// ISubscriptionManager fans notifications out to subscribers
type ISubscriptionManager interface {
	Subscribe() ISubscription
	Unsubscribe(ch chan struct{})
	// Emit never blocks on a slow subscriber
	Emit(ctx context.Context)
}

type Subscription struct {
	ch     chan struct{}
	mgr    *SubscriptionManager
	mu     sync.Mutex
	cancel context.CancelFunc
	once   sync.Once
}

func (s *Subscription) Chan() <-chan struct{} { return s.ch }

func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.mu.Lock()
		cancel := s.cancel
		s.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		s.mgr.Unsubscribe(s.ch)
	})
}

func (s *Subscription) Watch(parentCtx context.Context, cb func(), callNow bool) ISubscription {
	ctx, cancel := context.WithCancel(parentCtx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	if callNow {
		cb()
	}

	go func() {
		defer s.Cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-s.ch:
				if !ok {
					return
				}
				cb()
			}
		}
	}()

	return s
}

// SubscriptionManager is a fan-out notifier without payload
type SubscriptionManager struct {
	mu          sync.RWMutex
	subscribers map[chan struct{}]struct{}
}

func NewSubscriptionManager() *SubscriptionManager {
	return &SubscriptionManager{
		subscribers: make(map[chan struct{}]struct{}),
	}
}

func (m *SubscriptionManager) Subscribe() ISubscription {
	// One slot: pending notifications collapse into one
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	m.subscribers[ch] = struct{}{}
	m.mu.Unlock()

	return &Subscription{ch: ch, mgr: m}
}

func (m *SubscriptionManager) Unsubscribe(ch chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.subscribers[ch]; ok {
		delete(m.subscribers, ch)
		close(ch)
	}
}

// SubscriberCount returns the number of active subscriptions
func (m *SubscriptionManager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}

func (m *SubscriptionManager) Emit(ctx context.Context) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for ch := range m.subscribers {
		if ctx.Err() != nil {
			return
		}
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
