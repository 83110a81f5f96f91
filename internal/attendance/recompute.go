package attendance

import (
	"time"

	"github.com/colvahr/backoffice/internal/core/duration"
	"github.com/colvahr/backoffice/internal/core/period"
)

// Recompute rebuilds the daily/weekly/monthly running totals on every event
// of one employee by replaying the full history in (date, time, id) order.
// It is a complete replay on purpose: per-employee volumes are a few events a
// day, and replaying from the start makes retroactive edits trivially
// correct and the pass idempotent.
//
// With recompute_atomic the whole pass runs inside one transaction and fails
// atomically; otherwise row persistence errors are logged and skipped,
// matching the lenient posture of the rest of the system.
func (s *Service) Recompute(employeeID int64) error {
	run := func(repo Repository) error {
		return s.replay(repo, employeeID)
	}

	if s.atomic {
		return s.repo.Transaction(run)
	}
	return run(s.repo)
}

func (s *Service) replay(repo Repository, employeeID int64) error {
	evs, err := repo.ListForEmployee(employeeID)
	if err != nil {
		return err
	}

	var (
		dailySeconds, weeklySeconds, monthlySeconds int
		currentDay, currentWeek, currentMonth       string
		openCheckIn                                 *time.Time
	)

	for _, ev := range evs {
		ts := ev.Timestamp()

		if day := period.DayKey(ts); day != currentDay {
			dailySeconds = 0
			currentDay = day
		}
		if week := period.WeekKey(ts); week != currentWeek {
			weeklySeconds = 0
			currentWeek = week
		}
		if month := period.MonthKey(ts); month != currentMonth {
			monthlySeconds = 0
			currentMonth = month
		}

		if ev.Working {
			if openCheckIn != nil {
				// Corrupt ordering: the earlier open session is silently
				// dropped, its eventual duration never counted.
				s.logger.Warn("consecutive check-ins in ledger",
					"employee_id", employeeID, "event_id", ev.ID, "date", ev.Date, "time", ev.Time)
			}
			openCheckIn = &ts

			// A check-in always displays zero totals, even mid-day.
			if err := repo.UpdateComputed(ev.ID, true, duration.Zero, duration.Zero, duration.Zero); err != nil {
				if s.atomic {
					return err
				}
				s.logger.Error("failed to persist recomputed check-in", "error", err, "event_id", ev.ID)
			}
			continue
		}

		elapsed := 0
		if openCheckIn != nil {
			elapsed = int(ts.Sub(*openCheckIn).Seconds())
			if elapsed < 0 {
				elapsed = 0
			}
			if ev.Forced && elapsed > int(s.ceiling.Seconds()) {
				elapsed = int(s.ceiling.Seconds())
			}
		}

		dailySeconds += elapsed
		weeklySeconds += elapsed
		monthlySeconds += elapsed
		openCheckIn = nil

		err := repo.UpdateComputed(ev.ID, false,
			duration.FromSeconds(dailySeconds),
			duration.FromSeconds(weeklySeconds),
			duration.FromSeconds(monthlySeconds))
		if err != nil {
			if s.atomic {
				return err
			}
			s.logger.Error("failed to persist recomputed check-out", "error", err, "event_id", ev.ID)
		}
	}

	return nil
}
