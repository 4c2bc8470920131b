package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/SantoSarker101/airbnb-server/internal/core/ports"
)

type recordingMailer struct {
	mu     sync.Mutex
	sent   []string
	err    error
	signal chan struct{}
}

func newRecordingMailer(buffer int) *recordingMailer {
	return &recordingMailer{signal: make(chan struct{}, buffer)}
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.mu.Unlock()
	m.signal <- struct{}{}
	return m.err
}

func (m *recordingMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	copy(out, m.sent)
	return out
}

type stubDedup struct {
	mu        sync.Mutex
	duplicate bool
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, bookingID, recipient string) (bool, error) {
	return d.duplicate, nil
}

func (d *stubDedup) Mark(_ context.Context, bookingID, recipient string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.marked = append(d.marked, bookingID+":"+recipient)
	return nil
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_DeliversEnqueuedNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newRecordingMailer(4)
	dedup := &stubDedup{}
	d := NewDispatcher(2, mailer, dedup, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.Notification{BookingID: "bk1", Recipient: "guest", To: "g@x.com", Subject: "s", Body: "b"})
	d.Enqueue(ports.Notification{BookingID: "bk1", Recipient: "host", To: "h@x.com", Subject: "s", Body: "b"})

	waitFor(t, mailer.signal, 2)

	sent := mailer.sentTo()
	if len(sent) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(sent))
	}

	dedup.mu.Lock()
	marked := len(dedup.marked)
	dedup.mu.Unlock()
	if marked != 2 {
		t.Fatalf("expected 2 dedup marks, got %d", marked)
	}
}

func TestDispatcher_SkipsDuplicates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newRecordingMailer(4)
	d := NewDispatcher(1, mailer, &stubDedup{duplicate: true}, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.Notification{BookingID: "bk1", Recipient: "guest", To: "g@x.com"})

	select {
	case <-mailer.signal:
		t.Fatalf("duplicate notification was delivered")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcher_SendFailureIsAbsorbed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newRecordingMailer(4)
	mailer.err = errors.New("smtp down")
	dedup := &stubDedup{}
	d := NewDispatcher(1, mailer, dedup, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.Notification{BookingID: "bk1", Recipient: "guest", To: "g@x.com"})
	d.Enqueue(ports.Notification{BookingID: "bk2", Recipient: "guest", To: "g@x.com"})

	// both attempts happen despite the first failing
	waitFor(t, mailer.signal, 2)

	dedup.mu.Lock()
	marked := len(dedup.marked)
	dedup.mu.Unlock()
	if marked != 0 {
		t.Fatalf("failed deliveries must not be marked as sent, got %d marks", marked)
	}
}

func TestDispatcher_SameRecipientSameWorker(t *testing.T) {
	d := NewDispatcher(8, newRecordingMailer(1), nil, zerolog.Nop())

	first := d.shardIndex("g@x.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("g@x.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
