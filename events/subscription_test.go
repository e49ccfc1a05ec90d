package events

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionManager_EmitReachesEverySubscriber(t *testing.T) {
	sm := NewSubscriptionManager()

	subs := make([]ISubscription, 3)
	for i := range subs {
		subs[i] = sm.Subscribe()
	}

	sm.Emit(context.Background())

	for i, sub := range subs {
		select {
		case <-sub.Chan():
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d was not notified", i)
		}
	}
}

func TestSubscriptionManager_NotificationsCollapse(t *testing.T) {
	sm := NewSubscriptionManager()
	sub := sm.Subscribe()
	defer sub.Cancel()

	sm.Emit(context.Background())
	sm.Emit(context.Background())
	sm.Emit(context.Background())

	<-sub.Chan()
	select {
	case <-sub.Chan():
		t.Fatal("expected a single pending notification")
	default:
	}
}

func TestSubscription_CancelIsIdempotent(t *testing.T) {
	sm := NewSubscriptionManager()
	sub := sm.Subscribe()
	require.Equal(t, 1, sm.SubscriberCount())

	sub.Cancel()
	sub.Cancel()

	assert.Equal(t, 0, sm.SubscriberCount())
	_, ok := <-sub.Chan()
	assert.False(t, ok)

	// Emitting with no subscribers is a no-op
	sm.Emit(context.Background())
}

func TestSubscription_Watch(t *testing.T) {
	sm := NewSubscriptionManager()
	ctx, cancel := context.WithCancel(context.Background())

	var calls int32
	sm.Subscribe().Watch(ctx, func() { atomic.AddInt32(&calls, 1) }, true)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	sm.Emit(ctx)
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 2 }, time.Second, 10*time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool { return sm.SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)
}
