package employee

import (
	"errors"
	"log/slog"

	"github.com/colvahr/backoffice/internal"
)

// Repository defines the data access methods for employees. Create seeds the
// one-to-one profile rows in the same transaction; Delete removes every
// dependent row (ledger, incidences, leaves, profiles) before the employee.
type Repository interface {
	Create(emp *Employee) error
	GetByID(id int64) (*Employee, error)
	GetByPin(pin string) (*Employee, error)
	GetAll(department string) ([]*Employee, error)
	Update(emp *Employee) error
	Delete(id int64) error
	PinTaken(pin string, excludeID int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err)
		return nil, err
	}

	taken, err := s.repo.PinTaken(dto.PinCode, 0)
	if err != nil {
		s.logger.Error("failed to check pin uniqueness", "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}
	if taken {
		return nil, internal.ErrPinTaken
	}

	emp := &Employee{
		FullName:    dto.FullName,
		DateOfBirth: dto.DateOfBirth,
		Gender:      dto.Gender,
		PinCode:     dto.PinCode,
		Photo:       dto.Photo,
	}

	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee", "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "full_name", emp.FullName)
	return emp, nil
}

func (s *Service) GetEmployee(id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, internal.ErrEmployeeNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	return emp, nil
}

// ResolveByPin is the lookup behind every clock and incidence action.
func (s *Service) ResolveByPin(pin string) (*Employee, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}
	emp, err := s.repo.GetByPin(pin)
	if err != nil {
		if errors.Is(err, internal.ErrPinNotFound) {
			return nil, internal.ErrPinNotFound
		}
		s.logger.Error("failed to resolve pin", "error", err)
		return nil, internal.NewInternalError("failed to resolve pin", err)
	}
	return emp, nil
}

func (s *Service) ListEmployees(department string) ([]*Employee, error) {
	employees, err := s.repo.GetAll(department)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return employees, nil
}

func (s *Service) UpdateEmployee(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound
	}

	taken, err := s.repo.PinTaken(dto.PinCode, id)
	if err != nil {
		return nil, internal.NewInternalError("failed to update employee", err)
	}
	if taken {
		return nil, internal.ErrPinTaken
	}

	emp.FullName = dto.FullName
	emp.DateOfBirth = dto.DateOfBirth
	emp.Gender = dto.Gender
	emp.PinCode = dto.PinCode
	if dto.Photo != nil {
		emp.Photo = dto.Photo
	}

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("failed to update employee", err)
	}

	s.logger.Info("employee updated", "employee_id", id)
	return emp, nil
}

func (s *Service) DeleteEmployee(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return internal.NewInternalError("failed to delete employee", err)
	}

	s.logger.Info("employee deleted with dependents", "employee_id", id)
	return nil
}
