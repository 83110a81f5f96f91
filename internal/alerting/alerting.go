// Package alerting subscribes to domain events and surfaces them in the
// structured log. A future version can fan these out to mail or chat.
package alerting

import (
	"context"
	"log/slog"

	"github.com/colvahr/backoffice/internal/core/events"
)

type Alerter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Alerter {
	return &Alerter{logger: logger}
}

// Register wires the alerter into the event bus.
func (a *Alerter) Register(bus *events.EventBus) {
	bus.Subscribe(events.TypeAutoCheckout, a.onAutoCheckout)
	bus.Subscribe(events.TypeIncidenceOpened, a.onIncidenceOpened)
}

func (a *Alerter) onAutoCheckout(ctx context.Context, e events.Event) error {
	data, _ := e.Payload().(map[string]interface{})
	a.logger.Warn("session closed by guard",
		"event_id", e.EventID(),
		"employee_id", data["employee_id"],
		"session_opened", data["session_opened"],
		"capped_duration", data["capped_duration"],
	)
	return nil
}

func (a *Alerter) onIncidenceOpened(ctx context.Context, e events.Event) error {
	data, _ := e.Payload().(map[string]interface{})
	a.logger.Info("incidence reported",
		"event_id", e.EventID(),
		"incidence_id", data["incidence_id"],
		"employee_id", data["employee_id"],
		"type", data["incidence_type"],
	)
	return nil
}
