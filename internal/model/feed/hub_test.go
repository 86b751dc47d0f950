package feed

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func event(owner, id string) expense.ChangeEvent {
	return expense.ChangeEvent{Kind: expense.Insert, Record: expense.Record{ID: id, Owner: owner}}
}

func Test_Publish_DeliversOnlyToOwner(t *testing.T) {
	h := NewHub()
	var a, b []string
	subA, err := h.Subscribe("a", func(ev expense.ChangeEvent) { a = append(a, ev.Record.ID) })
	require.NoError(t, err)
	defer subA.Close()
	subB, err := h.Subscribe("b", func(ev expense.ChangeEvent) { b = append(b, ev.Record.ID) })
	require.NoError(t, err)
	defer subB.Close()

	h.Publish(event("a", "1"))
	h.Publish(event("b", "2"))
	h.Publish(event("c", "3"))

	assert.Equal(t, []string{"1"}, a)
	assert.Equal(t, []string{"2"}, b)
}

func Test_Subscribe_RequiresOwner(t *testing.T) {
	_, err := NewHub().Subscribe("", func(expense.ChangeEvent) {})
	assert.True(t, errors.Is(err, ErrEmptyOwner))
}

func Test_Close_StopsDelivery(t *testing.T) {
	h := NewHub()
	calls := 0
	sub, err := h.Subscribe("a", func(expense.ChangeEvent) { calls++ })
	require.NoError(t, err)

	h.Publish(event("a", "1"))
	sub.Close()
	sub.Close()
	h.Publish(event("a", "2"))

	assert.Equal(t, 1, calls)
	assert.Empty(t, h.subs)
}

func Test_Close_WaitsForRunningCallback(t *testing.T) {
	h := NewHub()
	entered := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	sub, err := h.Subscribe("a", func(expense.ChangeEvent) {
		close(entered)
		<-release
		finished.Store(true)
	})
	require.NoError(t, err)

	go h.Publish(event("a", "1"))
	<-entered

	closed := make(chan struct{})
	go func() {
		sub.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while callback was running")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
	<-closed
	assert.True(t, finished.Load())
}

func Test_Publish_ConcurrentWithClose(t *testing.T) {
	h := NewHub()
	var mu sync.Mutex
	afterClose := false
	sub, err := h.Subscribe("a", func(expense.ChangeEvent) {
		mu.Lock()
		defer mu.Unlock()
		if afterClose {
			t.Error("callback after Close")
		}
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Publish(event("a", "x"))
			}
		}()
	}
	time.Sleep(time.Millisecond)
	sub.Close()
	mu.Lock()
	afterClose = true
	mu.Unlock()
	wg.Wait()
}
