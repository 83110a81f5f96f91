package attendance

import (
	"context"
	"log/slog"
	"time"
)

// Guard is the auto-checkout monitor: a recurring sweep that force-closes
// sessions left open longer than the configured ceiling. It is the only
// autonomous actor in the system.
type Guard struct {
	service      *Service
	interval     time.Duration
	initialDelay time.Duration
	logger       *slog.Logger
}

func NewGuard(service *Service, interval, initialDelay time.Duration, logger *slog.Logger) *Guard {
	return &Guard{
		service:      service,
		interval:     interval,
		initialDelay: initialDelay,
		logger:       logger,
	}
}

// Run blocks until ctx is cancelled. A failed sweep is logged and the next
// scheduled sweep proceeds independently; there is no retry of a missed one.
func (g *Guard) Run(ctx context.Context) {
	g.logger.Info("session guard starting",
		"interval", g.interval, "initial_delay", g.initialDelay, "ceiling", g.service.ceiling)

	select {
	case <-ctx.Done():
		return
	case <-time.After(g.initialDelay):
	}

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		if err := g.Sweep(ctx); err != nil {
			g.logger.Error("guard sweep failed", "error", err)
		}

		select {
		case <-ctx.Done():
			g.logger.Info("session guard stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep force-closes every session open longer than the ceiling, as of now.
func (g *Guard) Sweep(ctx context.Context) error {
	return g.SweepAt(ctx, time.Now())
}

// SweepAt runs one sweep against the given wall-clock instant.
func (g *Guard) SweepAt(ctx context.Context, now time.Time) error {
	open, err := g.service.repo.OpenSessions()
	if err != nil {
		return err
	}

	for _, session := range open {
		g.sweepOne(ctx, session, now)
	}

	return nil
}

// sweepOne re-checks the session under the employee's lock: a punch that
// landed between the sweep query and this write must not be double-closed.
func (g *Guard) sweepOne(ctx context.Context, session *Event, now time.Time) {
	svc := g.service

	unlock := svc.locker.Lock(session.EmployeeID)
	defer unlock()

	latest, err := svc.repo.LatestForEmployee(session.EmployeeID)
	if err != nil {
		g.logger.Error("guard failed to re-read latest event", "error", err, "employee_id", session.EmployeeID)
		return
	}
	if latest == nil || !latest.Working || latest.ID != session.ID {
		g.logger.Debug("session already closed by a concurrent punch", "employee_id", session.EmployeeID)
		return
	}

	elapsed := now.Sub(latest.Timestamp())
	if elapsed <= svc.ceiling {
		return
	}

	g.logger.Warn("force-closing overlong session",
		"employee_id", session.EmployeeID,
		"opened_at", latest.Date+" "+latest.Time,
		"elapsed", elapsed,
		"ceiling", svc.ceiling)

	if err := svc.closeSession(ctx, session.EmployeeID, latest, now, latest.Vacation); err != nil {
		g.logger.Error("guard failed to close session", "error", err, "employee_id", session.EmployeeID)
	}
}
