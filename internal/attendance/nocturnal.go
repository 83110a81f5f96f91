package attendance

import (
	"time"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/core/duration"
)

// Nightly window boundaries: work between 22:00 and 06:00 counts as
// nocturnal.
const (
	nocturnalEveningStart = 22
	nocturnalMorningEnd   = 6
)

// NocturnalHours sums the seconds of closed sessions that fall inside the
// nightly window during the given YYYY-MM month. Sessions spanning midnight
// or the month boundary are clipped, not attributed wholesale.
func (s *Service) NocturnalHours(employeeID int64, month string) (*NocturnalReport, error) {
	monthStart, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, internal.NewValidationError("month must be YYYY-MM", internal.ErrCodeInvalidDate)
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}

	evs, err := s.repo.ListForEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to list ledger for nocturnal report", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to build nocturnal report", err)
	}

	total := 0
	var open *time.Time
	for _, ev := range evs {
		ts := ev.Timestamp()
		if ev.Working {
			open = &ts
			continue
		}
		if open == nil {
			continue
		}
		start, end := *open, ts
		open = nil
		if !end.After(start) {
			continue
		}
		if ev.Forced && end.Sub(start) > s.ceiling {
			end = start.Add(s.ceiling)
		}
		total += nocturnalOverlap(start, end, monthStart, monthEnd)
	}

	return &NocturnalReport{
		EmployeeID: employeeID,
		Month:      month,
		Seconds:    total,
		Duration:   duration.FromSeconds(total),
	}, nil
}

// nocturnalOverlap counts the seconds of [start, end) that are both inside
// [monthStart, monthEnd) and inside a nightly window.
func nocturnalOverlap(start, end, monthStart, monthEnd time.Time) int {
	if start.Before(monthStart) {
		start = monthStart
	}
	if end.After(monthEnd) {
		end = monthEnd
	}
	if !end.After(start) {
		return 0
	}

	total := 0
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for day.Before(end) {
		morningEnd := day.Add(time.Duration(nocturnalMorningEnd) * time.Hour)
		eveningStart := day.Add(time.Duration(nocturnalEveningStart) * time.Hour)
		nextDay := day.AddDate(0, 0, 1)

		total += overlapSeconds(start, end, day, morningEnd)
		total += overlapSeconds(start, end, eveningStart, nextDay)

		day = nextDay
	}
	return total
}

func overlapSeconds(a1, a2, b1, b2 time.Time) int {
	lo := a1
	if b1.After(lo) {
		lo = b1
	}
	hi := a2
	if b2.Before(hi) {
		hi = b2
	}
	if !hi.After(lo) {
		return 0
	}
	return int(hi.Sub(lo).Seconds())
}
