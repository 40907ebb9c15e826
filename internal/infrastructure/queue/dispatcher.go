// Package queue provides the in-process dispatcher that moves view events off
// the request path.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/api/metrics"
	"github.com/localspot/directory-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher fans view events out to a fixed pool of workers. Events are
// sharded by business id so all events for one listing land on the same
// worker and keep their arrival order. A full worker channel drops the event;
// the audit trail is best-effort and must never block a read.
type Dispatcher struct {
	service  ports.ViewEventService
	logger   zerolog.Logger
	channels []chan ports.ViewEventInput
	wg       sync.WaitGroup
}

var _ ports.ViewEventSink = (*Dispatcher)(nil)

func NewDispatcher(service ports.ViewEventService, logger zerolog.Logger) *Dispatcher {
	channels := make([]chan ports.ViewEventInput, defaultWorkers)
	for i := range channels {
		channels[i] = make(chan ports.ViewEventInput, channelBuffer)
	}
	return &Dispatcher{
		service:  service,
		logger:   logger,
		channels: channels,
	}
}

// Start launches the worker pool. Workers drain their channels until ctx is
// cancelled; call Wait after cancelling to let in-flight events finish.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.channels {
		d.wg.Add(1)
		go d.worker(ctx, i, ch)
	}
}

// Wait blocks until every worker has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands an event to its shard without blocking.
func (d *Dispatcher) Enqueue(event ports.ViewEventInput) {
	shard := d.shardFor(event.BusinessID)
	ch := d.channels[shard]

	select {
	case ch <- event:
		metrics.ViewEventsQueueDepth.WithLabelValues(strconv.Itoa(shard)).Set(float64(len(ch)))
	default:
		d.logger.Warn().
			Int("worker_id", shard).
			Str("business_id", event.BusinessID).
			Msg("view event dropped, worker channel full")
	}
}

func (d *Dispatcher) worker(ctx context.Context, id int, ch chan ports.ViewEventInput) {
	defer d.wg.Done()

	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-ch:
			metrics.ViewEventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(context.Background(), event); err != nil {
				d.logger.Error().Err(err).
					Str("business_id", event.BusinessID).
					Msg("process view event failed")
			}
		}
	}
}

func (d *Dispatcher) shardFor(businessID string) int {
	h := fnv.New32a()
	h.Write([]byte(businessID))
	return int(h.Sum32() % uint32(len(d.channels)))
}
