package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/telhawk-systems/larkrelay/internal/logging"
	"github.com/telhawk-systems/larkrelay/internal/metrics"
	"github.com/telhawk-systems/larkrelay/internal/notifier"
	"github.com/telhawk-systems/larkrelay/internal/transform"
	"github.com/telhawk-systems/larkrelay/pkg/linear"
)

// Outcome says what the relay did with one authenticated, parsed event.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeDelivered
	OutcomeDeliveryFailed
)

// Result carries the outcome of processing one event. Err is set only for
// OutcomeDeliveryFailed and is already logged; callers acknowledge the
// event upstream regardless.
type Result struct {
	Outcome    Outcome
	SkipReason string
	Delivery   *notifier.Delivery
	Err        error
}

// RelayService runs events through classification and delivery.
type RelayService struct {
	channel notifier.Channel
	logger  *logging.Logger
}

func NewRelayService(channel notifier.Channel) *RelayService {
	return &RelayService{
		channel: channel,
		logger:  logging.Default().With(slog.String("component", "relay")),
	}
}

// Process classifies evt and, when it qualifies, attempts one delivery.
// Delivery failures are absorbed here: logged, counted, and reported in
// the Result, never escalated — the upstream sender cannot act on them.
func (s *RelayService) Process(ctx context.Context, evt *linear.Event) Result {
	decision := transform.Classify(evt)
	if !decision.Notify {
		metrics.EventsSkippedTotal.WithLabelValues(decision.SkipReason).Inc()
		s.logger.InfoContext(ctx, "ignoring event",
			logging.EventKind(evt.Kind),
			logging.Action(evt.Action),
		)
		return Result{Outcome: OutcomeSkipped, SkipReason: decision.SkipReason}
	}

	s.logger.InfoContext(ctx, "processing issue event",
		logging.Action(evt.Action),
		logging.Identifier(evt.Data.Identifier),
		slog.String("title", evt.Data.Title),
	)

	start := time.Now()
	delivery, err := s.channel.Send(ctx, decision.Message)
	metrics.DeliveryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.DeliveriesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.logger.ErrorContext(ctx, "failed to send lark notification",
			logging.Action(evt.Action),
			logging.Identifier(evt.Data.Identifier),
			logging.Error(err),
		)
		return Result{Outcome: OutcomeDeliveryFailed, Err: err}
	}

	metrics.DeliveriesTotal.WithLabelValues(metrics.OutcomeSent).Inc()
	s.logger.InfoContext(ctx, "lark notification sent",
		logging.Identifier(evt.Data.Identifier),
		logging.Status(delivery.StatusCode),
		slog.String("response", delivery.Body),
	)
	return Result{Outcome: OutcomeDelivered, Delivery: delivery}
}
