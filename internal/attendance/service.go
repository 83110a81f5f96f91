package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/core/events"
	"github.com/colvahr/backoffice/internal/employee"
)

// Repository defines the data access methods for the ledger.
// ListForEmployee returns events ordered by (date, time, id) ascending; that
// ordering is the contract the replay depends on.
type Repository interface {
	Insert(e *Event) error
	GetByID(id int64) (*Event, error)
	Update(e *Event) error
	Delete(id int64) error
	ListForEmployee(employeeID int64) ([]*Event, error)
	LatestForEmployee(employeeID int64) (*Event, error)
	OpenSessions() ([]*Event, error)
	ActiveEmployees(department string) ([]*ActiveEmployee, error)
	UpdateComputed(id int64, active bool, daily, weekly, monthly string) error
	Transaction(fn func(Repository) error) error
}

// EmployeeDirectory is the slice of the employee service the clock needs.
type EmployeeDirectory interface {
	GetEmployee(id int64) (*employee.Employee, error)
	ResolveByPin(pin string) (*employee.Employee, error)
}

// IncidenceOpener raises the auto-checkout incidence when a session is
// force-closed.
type IncidenceOpener interface {
	OpenForEmployee(employeeID int64, incidenceType, description string) (int64, error)
}

type Service struct {
	repo       Repository
	directory  EmployeeDirectory
	incidences IncidenceOpener
	bus        *events.EventBus
	locker     *employeeLocker
	ceiling    time.Duration
	atomic     bool
	logger     *slog.Logger
}

func NewService(repo Repository, directory EmployeeDirectory, incidences IncidenceOpener, bus *events.EventBus, ceiling time.Duration, atomicRecompute bool, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		directory:  directory,
		incidences: incidences,
		bus:        bus,
		locker:     newEmployeeLocker(),
		ceiling:    ceiling,
		atomic:     atomicRecompute,
		logger:     logger,
	}
}

// CheckInOut is the live clock action: the latest ledger event decides
// whether this punch opens or closes a session. The whole read-decide-write
// sequence runs under the employee's lock so it cannot race the guard.
func (s *Service) CheckInOut(ctx context.Context, pin string) (*PunchResponse, error) {
	emp, err := s.directory.ResolveByPin(pin)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(emp.ID)
	defer unlock()

	latest, err := s.repo.LatestForEmployee(emp.ID)
	if err != nil {
		s.logger.Error("failed to read latest event", "error", err, "employee_id", emp.ID)
		return nil, internal.NewInternalError("failed to read ledger", err)
	}

	now := time.Now()
	vacation := 0
	if latest != nil {
		vacation = latest.Vacation
	}

	if latest != nil && latest.Working {
		if err := s.closeSession(ctx, emp.ID, latest, now, vacation); err != nil {
			return nil, err
		}
		return &PunchResponse{
			Message:  fmt.Sprintf("Goodbye, %s", emp.FullName),
			Employee: emp.FullName,
			Working:  false,
		}, nil
	}

	checkIn := newEvent(emp.ID, now, true, vacation)
	if err := s.repo.Insert(checkIn); err != nil {
		s.logger.Error("failed to insert check-in", "error", err, "employee_id", emp.ID)
		return nil, internal.NewInternalError("failed to record check-in", err)
	}

	if err := s.Recompute(emp.ID); err != nil {
		s.logger.Error("recompute after check-in failed", "error", err, "employee_id", emp.ID)
	}

	s.logger.Info("employee checked in", "employee_id", emp.ID)
	return &PunchResponse{
		Message:  fmt.Sprintf("Welcome, %s", emp.FullName),
		Employee: emp.FullName,
		Working:  true,
	}, nil
}

// closeSession writes the closing event for an open session. Elapsed time
// beyond the configured ceiling is discarded: the event is marked forced, its
// replayed duration capped, and an auto-checkout incidence opened.
func (s *Service) closeSession(ctx context.Context, employeeID int64, open *Event, at time.Time, vacation int) error {
	elapsed := at.Sub(open.Timestamp())
	if elapsed < 0 {
		elapsed = 0
	}
	forced := elapsed > s.ceiling

	checkOut := newEvent(employeeID, at, false, vacation)
	checkOut.Forced = forced

	if err := s.repo.Insert(checkOut); err != nil {
		s.logger.Error("failed to insert check-out", "error", err, "employee_id", employeeID)
		return internal.NewInternalError("failed to record check-out", err)
	}

	if err := s.Recompute(employeeID); err != nil {
		s.logger.Error("recompute after check-out failed", "error", err, "employee_id", employeeID)
	}

	if forced {
		s.raiseAutoCheckout(ctx, employeeID, open.Timestamp())
	}

	s.logger.Info("employee checked out", "employee_id", employeeID, "forced", forced)
	return nil
}

func (s *Service) raiseAutoCheckout(ctx context.Context, employeeID int64, openedAt time.Time) {
	capped := formatCeiling(s.ceiling)
	description := fmt.Sprintf("Session opened %s exceeded the %s ceiling and was closed automatically",
		openedAt.Format(timestampLayout), capped)

	if _, err := s.incidences.OpenForEmployee(employeeID, fmt.Sprintf("%s >%s", IncidenceType, capped), description); err != nil {
		s.logger.Error("failed to open auto-checkout incidence", "error", err, "employee_id", employeeID)
	}

	s.bus.Publish(ctx, events.NewAutoCheckout(employeeID, openedAt, capped))
}

// ListForEmployee returns the employee's full ledger in replay order.
func (s *Service) ListForEmployee(employeeID int64) ([]*Event, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}

	evs, err := s.repo.ListForEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to list ledger", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to list ledger", err)
	}
	return evs, nil
}

// InsertEvent is the editor append: an arbitrary historical clock action.
func (s *Service) InsertEvent(dto InsertEventDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetEmployee(dto.EmployeeID); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(dto.EmployeeID)
	defer unlock()

	ev := &Event{
		EmployeeID: dto.EmployeeID,
		Date:       dto.Date,
		Time:       dto.Time,
		Working:    dto.Working,
		Active:     dto.Working,
	}
	if err := s.repo.Insert(ev); err != nil {
		s.logger.Error("failed to insert editor event", "error", err, "employee_id", dto.EmployeeID)
		return nil, internal.NewInternalError("failed to insert event", err)
	}

	if err := s.Recompute(dto.EmployeeID); err != nil {
		s.logger.Error("recompute after editor insert failed", "error", err, "employee_id", dto.EmployeeID)
	}

	out, err := s.repo.GetByID(ev.ID)
	if err != nil {
		return ev, nil
	}
	return out, nil
}

// UpdateEvent overwrites date/time/working in place. Duration fields are not
// touched here: the recompute pass owns them.
func (s *Service) UpdateEvent(id int64, dto UpdateEventDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ev, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEventNotFound
	}

	unlock := s.locker.Lock(ev.EmployeeID)
	defer unlock()

	ev.Date = dto.Date
	ev.Time = dto.Time
	ev.Working = dto.Working
	if err := s.repo.Update(ev); err != nil {
		s.logger.Error("failed to update event", "error", err, "event_id", id)
		return nil, internal.NewInternalError("failed to update event", err)
	}

	if err := s.Recompute(ev.EmployeeID); err != nil {
		s.logger.Error("recompute after editor update failed", "error", err, "employee_id", ev.EmployeeID)
	}

	out, err := s.repo.GetByID(id)
	if err != nil {
		return ev, nil
	}
	return out, nil
}

// DeleteEvent removes a ledger row and rebuilds every downstream total.
func (s *Service) DeleteEvent(id int64) error {
	ev, err := s.repo.GetByID(id)
	if err != nil {
		return internal.ErrEventNotFound
	}

	unlock := s.locker.Lock(ev.EmployeeID)
	defer unlock()

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete event", "error", err, "event_id", id)
		return internal.NewInternalError("failed to delete event", err)
	}

	if err := s.Recompute(ev.EmployeeID); err != nil {
		s.logger.Error("recompute after editor delete failed", "error", err, "employee_id", ev.EmployeeID)
	}

	s.logger.Info("editor deleted event", "event_id", id, "employee_id", ev.EmployeeID)
	return nil
}

func (s *Service) ActiveEmployees(department string) ([]*ActiveEmployee, error) {
	active, err := s.repo.ActiveEmployees(department)
	if err != nil {
		s.logger.Error("failed to list active employees", "error", err)
		return nil, internal.NewInternalError("failed to list active employees", err)
	}
	return active, nil
}

func formatCeiling(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}
