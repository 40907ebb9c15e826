package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/core/ports"
)

type collectingService struct {
	mu     sync.Mutex
	events []ports.ViewEventInput
	done   chan struct{}
	want   int
}

func newCollectingService(want int) *collectingService {
	return &collectingService{done: make(chan struct{}), want: want}
}

func (s *collectingService) Process(_ context.Context, event ports.ViewEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := newCollectingService(20)
	d := NewDispatcher(svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Enqueue(ports.ViewEventInput{BusinessID: "biz-" + string(rune('a'+i%5)), ViewedAt: time.Now()})
	}

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for events, got %d", len(svc.events))
	}

	cancel()
	d.Wait()
}

func TestDispatcher_ShardingIsStable(t *testing.T) {
	d := NewDispatcher(newCollectingService(0), zerolog.Nop())

	first := d.shardFor("biz-42")
	for i := 0; i < 100; i++ {
		if got := d.shardFor("biz-42"); got != first {
			t.Fatalf("shard changed between calls: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= defaultWorkers {
		t.Fatalf("shard %d out of range", first)
	}
}
