package profile

import (
	"log/slog"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/employee"
)

type Repository interface {
	GetContact(employeeID int64) (*Contact, error)
	UpdateContact(c *Contact) error
	GetCompensation(employeeID int64) (*Compensation, error)
	UpdateCompensation(c *Compensation) error
	GetAcademic(employeeID int64) (*Academic, error)
	UpdateAcademic(a *Academic) error
	GetAdministrative(employeeID int64) (*Administrative, error)
	UpdateAdministrative(a *Administrative) error
	GetAssignment(employeeID int64) (*Assignment, error)
	UpdateAssignment(a *Assignment) error
}

type EmployeeDirectory interface {
	GetEmployee(id int64) (*employee.Employee, error)
}

type CatalogChecker interface {
	JobExists(id int64) error
	DepartmentExists(id int64) error
}

type Service struct {
	repo      Repository
	directory EmployeeDirectory
	catalog   CatalogChecker
	logger    *slog.Logger
}

func NewService(repo Repository, directory EmployeeDirectory, catalog CatalogChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, directory: directory, catalog: catalog, logger: logger}
}

func (s *Service) GetContact(employeeID int64) (*Contact, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	c, err := s.repo.GetContact(employeeID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateContact(employeeID int64, dto ContactDTO) (*Contact, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}

	c, err := s.repo.GetContact(employeeID)
	if err != nil {
		return nil, err
	}

	c.Address = dto.Address
	c.PhoneNumber = dto.PhoneNumber
	c.EmailPersonal = dto.EmailPersonal
	c.EmailCorporate = dto.EmailCorporate
	c.EmergencyContactName = dto.EmergencyContactName

	if err := s.repo.UpdateContact(c); err != nil {
		s.logger.Error("failed to update contact profile", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to update contact profile", err)
	}
	return c, nil
}

func (s *Service) GetCompensation(employeeID int64) (*Compensation, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	return s.repo.GetCompensation(employeeID)
}

func (s *Service) UpdateCompensation(employeeID int64, dto CompensationDTO) (*Compensation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}

	c, err := s.repo.GetCompensation(employeeID)
	if err != nil {
		return nil, err
	}

	c.BankAccount = dto.BankAccount
	c.GrossAnnualSalary = dto.GrossAnnualSalary
	c.ContractType = dto.ContractType

	if err := s.repo.UpdateCompensation(c); err != nil {
		s.logger.Error("failed to update compensation profile", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to update compensation profile", err)
	}
	return c, nil
}

func (s *Service) GetAcademic(employeeID int64) (*Academic, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	return s.repo.GetAcademic(employeeID)
}

func (s *Service) UpdateAcademic(employeeID int64, dto AcademicDTO) (*Academic, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}

	a, err := s.repo.GetAcademic(employeeID)
	if err != nil {
		return nil, err
	}

	a.EducationLevel = dto.EducationLevel
	a.Degree = dto.Degree
	a.Certifications = dto.Certifications

	if err := s.repo.UpdateAcademic(a); err != nil {
		s.logger.Error("failed to update academic profile", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to update academic profile", err)
	}
	return a, nil
}

func (s *Service) GetAdministrative(employeeID int64) (*Administrative, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	return s.repo.GetAdministrative(employeeID)
}

func (s *Service) UpdateAdministrative(employeeID int64, dto AdministrativeDTO) (*Administrative, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}

	a, err := s.repo.GetAdministrative(employeeID)
	if err != nil {
		return nil, err
	}

	a.NationalID = dto.NationalID
	a.SocialSecurityNumber = dto.SocialSecurityNumber
	a.SeniorityDate = dto.SeniorityDate

	if err := s.repo.UpdateAdministrative(a); err != nil {
		s.logger.Error("failed to update administrative profile", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to update administrative profile", err)
	}
	return a, nil
}

func (s *Service) GetAssignment(employeeID int64) (*Assignment, error) {
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	return s.repo.GetAssignment(employeeID)
}

func (s *Service) UpdateAssignment(employeeID int64, dto AssignmentDTO) (*Assignment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	if dto.JobID != nil {
		if err := s.catalog.JobExists(*dto.JobID); err != nil {
			return nil, err
		}
	}
	if dto.DepartmentID != nil {
		if err := s.catalog.DepartmentExists(*dto.DepartmentID); err != nil {
			return nil, err
		}
	}

	a, err := s.repo.GetAssignment(employeeID)
	if err != nil {
		return nil, err
	}

	a.JobID = dto.JobID
	a.DepartmentID = dto.DepartmentID
	a.WeeklyHours = dto.WeeklyHours
	a.StartDate = dto.StartDate

	if err := s.repo.UpdateAssignment(a); err != nil {
		s.logger.Error("failed to update assignment profile", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to update assignment profile", err)
	}

	s.logger.Info("assignment updated", "employee_id", employeeID, "job_id", dto.JobID, "department_id", dto.DepartmentID)
	return a, nil
}
