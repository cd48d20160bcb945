package log

import (
	"bytes"
	"slices"
	"sync"
)

// DefaultBacklog is the number of records a [Subscription] keeps before it
// starts dropping the oldest.
const DefaultBacklog = 64

// Publisher is an [io.Writer] that turns log output into records, one per
// non-blank line, and hands them to every [Subscription]. A full-screen
// viewer installs it as its log destination and shows the records itself.
//
// Writes never block on readers. Safe for concurrent use.
//
// Create instances with [NewPublisher].
type Publisher struct {
	subs    []*Subscription
	backlog int
	mu      sync.Mutex
	closed  bool
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBacklog sets how many records each subscription keeps. Values below 1
// become 1.
func WithBacklog(n int) PublisherOption {
	return func(p *Publisher) {
		p.backlog = max(n, 1)
	}
}

// NewPublisher returns a [Publisher] with a [DefaultBacklog] unless
// overridden by opts.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{backlog: DefaultBacklog}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Write splits b into lines and delivers each non-blank line, without its
// line break, to every open subscription. It always returns len(b), nil.
func (p *Publisher) Write(b []byte) (int, error) {
	var records []string

	for line := range bytes.Lines(b) {
		if rec := bytes.TrimSpace(line); len(rec) > 0 {
			records = append(records, string(rec))
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || len(records) == 0 {
		return len(b), nil
	}

	p.subs = slices.DeleteFunc(p.subs, (*Subscription).isClosed)
	for _, s := range p.subs {
		s.add(records)
	}

	return len(b), nil
}

// Subscribe returns a new [Subscription] that sees every record written
// from now on. Subscribing to a closed publisher returns a closed
// subscription.
func (p *Publisher) Subscribe() *Subscription {
	s := &Subscription{
		backlog: p.backlog,
		ready:   make(chan struct{}, 1),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		s.Close()
	} else {
		p.subs = append(p.subs, s)
	}

	return s
}

// Close closes every subscription and discards further writes. Records
// already buffered can still be read. Calling Close again is a no-op.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true

	for _, s := range p.subs {
		s.Close()
	}

	p.subs = nil

	return nil
}

// Subscription buffers the most recent records of a [Publisher] for one
// reader.
type Subscription struct {
	ready   chan struct{}
	records []string
	backlog int
	dropped int
	mu      sync.Mutex
	closed  bool
}

// Next returns the oldest buffered record, waiting for one if none is
// buffered. It returns false once the subscription is closed and drained.
func (s *Subscription) Next() (string, bool) {
	for {
		s.mu.Lock()

		if len(s.records) > 0 {
			rec := s.records[0]
			s.records = s.records[1:]
			s.mu.Unlock()

			return rec, true
		}

		closed := s.closed
		s.mu.Unlock()

		if closed {
			return "", false
		}

		<-s.ready
	}
}

// Dropped returns how many records were discarded because the reader fell
// behind by more than the backlog.
func (s *Subscription) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dropped
}

// Close detaches the subscription and wakes a blocked [Subscription.Next].
// Calling Close again is a no-op.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ready)
	}
}

func (s *Subscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *Subscription) add(records []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.records = append(s.records, records...)
	if over := len(s.records) - s.backlog; over > 0 {
		s.dropped += over
		s.records = slices.Clone(s.records[over:])
	}

	select {
	case s.ready <- struct{}{}:
	default:
	}
}
