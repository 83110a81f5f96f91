package incidence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/core/events"
	"github.com/colvahr/backoffice/internal/employee"
)

type Repository interface {
	Create(inc *Incidence) error
	GetByID(id int64) (*Incidence, error)
	MarkCompleted(id int64, resolvedAt time.Time) error
	ListOpen(filter ListOpenFilter) ([]*OpenListing, error)
}

// PinResolver is the slice of the employee service the worker-reported path
// needs.
type PinResolver interface {
	ResolveByPin(pin string) (*employee.Employee, error)
	GetEmployee(id int64) (*employee.Employee, error)
}

type Service struct {
	repo     Repository
	resolver PinResolver
	bus      *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, resolver PinResolver, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{repo: repo, resolver: resolver, bus: bus, logger: logger}
}

// Report is the worker-reported path: the employee identifies by PIN.
func (s *Service) Report(dto ReportIncidenceDTO) (*Incidence, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.resolver.ResolveByPin(dto.PinCode)
	if err != nil {
		return nil, err
	}

	return s.open(emp.ID, dto.Type, dto.Description)
}

// OpenForEmployee is the guard path: the employee id is already resolved.
func (s *Service) OpenForEmployee(employeeID int64, incidenceType, description string) (int64, error) {
	if _, err := s.resolver.GetEmployee(employeeID); err != nil {
		return 0, err
	}

	inc, err := s.open(employeeID, incidenceType, description)
	if err != nil {
		return 0, err
	}
	return inc.ID, nil
}

func (s *Service) open(employeeID int64, incidenceType, description string) (*Incidence, error) {
	inc := &Incidence{
		EmployeeID:  employeeID,
		Type:        incidenceType,
		Description: description,
		Status:      StatusOpen,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(inc); err != nil {
		s.logger.Error("failed to create incidence", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to create incidence", err)
	}

	s.logger.Info("incidence opened", "incidence_id", inc.ID, "employee_id", employeeID, "type", incidenceType)
	s.bus.Publish(context.Background(), events.NewIncidenceOpened(inc.ID, employeeID, incidenceType))

	return inc, nil
}

// Resolve moves an incidence Open → Completed exactly once; a second resolve
// is a conflict, never a silent rewrite of the resolution date.
func (s *Service) Resolve(id int64) (*Incidence, error) {
	inc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, internal.ErrIncidenceNotFound) {
			return nil, internal.ErrIncidenceNotFound
		}
		s.logger.Error("failed to get incidence", "error", err, "incidence_id", id)
		return nil, internal.NewInternalError("failed to resolve incidence", err)
	}

	if inc.Status == StatusCompleted {
		return nil, internal.ErrIncidenceCompleted
	}

	resolvedAt := time.Now()
	if err := s.repo.MarkCompleted(id, resolvedAt); err != nil {
		s.logger.Error("failed to mark incidence completed", "error", err, "incidence_id", id)
		return nil, internal.NewInternalError("failed to resolve incidence", err)
	}

	inc.Status = StatusCompleted
	inc.ResolvedAt = &resolvedAt

	s.logger.Info("incidence resolved", "incidence_id", id)
	return inc, nil
}

func (s *Service) ListOpen(filter ListOpenFilter) ([]*OpenListing, error) {
	listings, err := s.repo.ListOpen(filter)
	if err != nil {
		s.logger.Error("failed to list open incidences", "error", err)
		return nil, internal.NewInternalError("failed to list incidences", err)
	}
	return listings, nil
}
