package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/SantoSarker101/airbnb-server/internal/api/metrics"
	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// DedupChecker abstracts the delivery idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, bookingID, recipient string) (bool, error)
	Mark(ctx context.Context, bookingID, recipient string) error
}

// Dispatcher delivers notification emails from a fixed set of workers.
// Jobs are sharded by recipient address so a given mailbox receives its
// messages in enqueue order. Delivery failures are logged and absorbed;
// nothing propagates back to the enqueuing request.
type Dispatcher struct {
	workers []chan ports.Notification
	mailer  ports.Mailer
	dedup   DedupChecker
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, dedup DedupChecker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Notification, numWorkers),
		mailer:  mailer,
		dedup:   dedup,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker owning its recipient address.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	d.workers[d.shardIndex(n.To)] <- n
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, n)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, n ports.Notification) {
	if d.dedup != nil {
		isDup, err := d.dedup.IsDuplicate(ctx, n.BookingID, n.Recipient)
		if err != nil {
			metrics.NotificationsErrorsTotal.WithLabelValues("dedup_failed").Inc()
			d.log.Warn().Err(err).Str("booking_id", n.BookingID).Msg("dedup check failed, delivering anyway")
		} else if isDup {
			metrics.NotificationsDedupTotal.WithLabelValues("hit").Inc()
			d.log.Debug().Str("booking_id", n.BookingID).Str("recipient", n.Recipient).Msg("duplicate notification skipped")
			return
		} else {
			metrics.NotificationsDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	if err := d.mailer.Send(ctx, n.To, n.Subject, n.Body); err != nil {
		metrics.NotificationsErrorsTotal.WithLabelValues("send_failed").Inc()
		d.log.Error().Err(err).
			Str("booking_id", n.BookingID).
			Str("recipient", n.Recipient).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}

	if d.dedup != nil {
		if err := d.dedup.Mark(ctx, n.BookingID, n.Recipient); err != nil {
			d.log.Warn().Err(err).Str("booking_id", n.BookingID).Msg("failed to set dedup key")
		}
	}

	metrics.NotificationsSentTotal.WithLabelValues(n.Recipient).Inc()
	d.log.Info().
		Str("booking_id", n.BookingID).
		Str("recipient", n.Recipient).
		Msg("notification delivered")
}
