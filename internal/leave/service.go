package leave

import (
	"log/slog"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/employee"
)

type Repository interface {
	Create(l *Leave) error
	GetByID(id int64) (*Leave, error)
	ListForEmployee(employeeID int64) ([]*Leave, error)
	ListAll() ([]*Leave, error)
	Update(l *Leave) error
	Delete(id int64) error
}

type EmployeeDirectory interface {
	GetEmployee(id int64) (*employee.Employee, error)
}

type Service struct {
	repo      Repository
	directory EmployeeDirectory
	logger    *slog.Logger
}

func NewService(repo Repository, directory EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, directory: directory, logger: logger}
}

func (s *Service) CreateLeave(dto LeaveDTO) (*Leave, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetEmployee(dto.EmployeeID); err != nil {
		return nil, err
	}

	l := &Leave{
		EmployeeID:   dto.EmployeeID,
		StartDate:    dto.StartDate,
		DurationDays: dto.DurationDays,
		LeaveType:    dto.LeaveType,
	}
	if err := s.repo.Create(l); err != nil {
		s.logger.Error("failed to create leave", "error", err, "employee_id", dto.EmployeeID)
		return nil, internal.NewInternalError("failed to create leave", err)
	}

	s.logger.Info("leave created", "leave_id", l.ID, "employee_id", l.EmployeeID, "type", l.LeaveType)
	return l, nil
}

func (s *Service) ListLeaves(employeeID int64) ([]*Leave, error) {
	var (
		leaves []*Leave
		err    error
	)
	if employeeID > 0 {
		if _, dirErr := s.directory.GetEmployee(employeeID); dirErr != nil {
			return nil, dirErr
		}
		leaves, err = s.repo.ListForEmployee(employeeID)
	} else {
		leaves, err = s.repo.ListAll()
	}
	if err != nil {
		s.logger.Error("failed to list leaves", "error", err)
		return nil, internal.NewInternalError("failed to list leaves", err)
	}
	return leaves, nil
}

func (s *Service) UpdateLeave(id int64, dto LeaveDTO) (*Leave, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	l, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrLeaveNotFound
	}

	l.EmployeeID = dto.EmployeeID
	l.StartDate = dto.StartDate
	l.DurationDays = dto.DurationDays
	l.LeaveType = dto.LeaveType

	if err := s.repo.Update(l); err != nil {
		s.logger.Error("failed to update leave", "error", err, "leave_id", id)
		return nil, internal.NewInternalError("failed to update leave", err)
	}
	return l, nil
}

func (s *Service) DeleteLeave(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrLeaveNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete leave", "error", err, "leave_id", id)
		return internal.NewInternalError("failed to delete leave", err)
	}
	return nil
}
