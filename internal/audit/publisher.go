package audit

import (
	"context"
	"log/slog"
	"sync"

	"credmgr/pkg/requestcontext"
)

// Publisher appends audit events to a store, optionally through a buffered
// background worker.
type Publisher struct {
	store  Store
	events chan Event
	wg     sync.WaitGroup
	logger *slog.Logger
	async  bool
}

type PublisherOption func(*Publisher)

// WithAsyncBuffer queues events and persists them from a background goroutine.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.events = make(chan Event, size)
			p.async = true
		}
	}
}

func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

func (p *Publisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logger.Error("failed to persist audit event",
				"error", err,
				"action", event.Action,
				"company_short_name", event.CompanyShortName,
			)
		}
	}
}

// Close drains pending events. Emit must not be called afterwards.
func (p *Publisher) Close() {
	if p.async {
		close(p.events)
		p.wg.Wait()
	}
}

// Emit stamps the event with the request time and ID and records it. In async
// mode a full buffer drops the event rather than blocking the request.
func (p *Publisher) Emit(ctx context.Context, e Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = requestcontext.Now(ctx)
	}
	if e.RequestID == "" {
		e.RequestID = requestcontext.RequestID(ctx)
	}
	if !p.async {
		return p.store.Append(ctx, e)
	}
	select {
	case p.events <- e:
	default:
		p.logger.WarnContext(ctx, "audit buffer full, event dropped",
			"action", e.Action,
			"company_short_name", e.CompanyShortName,
		)
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, companyShortName string) ([]Event, error) {
	return p.store.ListByCompany(ctx, companyShortName)
}
