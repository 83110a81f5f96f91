package catalog

import (
	"log/slog"

	"github.com/colvahr/backoffice/internal"
)

type Repository interface {
	CreateDepartment(d *Department) error
	GetDepartment(id int64) (*Department, error)
	ListDepartments() ([]*Department, error)
	UpdateDepartment(d *Department) error
	DeleteDepartment(id int64) error
	DepartmentInUse(id int64) (bool, error)

	CreateJob(j *Job) error
	GetJob(id int64) (*Job, error)
	ListJobs(departmentID int64) ([]*Job, error)
	UpdateJob(j *Job) error
	DeleteJob(id int64) error
	JobInUse(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateDepartment(dto DepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d := &Department{Name: dto.Name}
	if err := s.repo.CreateDepartment(d); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "department_id", d.ID, "name", d.Name)
	return d, nil
}

func (s *Service) ListDepartments() ([]*Department, error) {
	departments, err := s.repo.ListDepartments()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("failed to list departments", err)
	}
	return departments, nil
}

func (s *Service) UpdateDepartment(id int64, dto DepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetDepartment(id)
	if err != nil {
		return nil, internal.ErrDepartmentNotFound
	}

	d.Name = dto.Name
	if err := s.repo.UpdateDepartment(d); err != nil {
		s.logger.Error("failed to update department", "error", err, "department_id", id)
		return nil, internal.NewInternalError("failed to update department", err)
	}
	return d, nil
}

// DeleteDepartment refuses to delete a department that still has jobs or
// assignment profiles pointing at it.
func (s *Service) DeleteDepartment(id int64) error {
	if _, err := s.repo.GetDepartment(id); err != nil {
		return internal.ErrDepartmentNotFound
	}

	inUse, err := s.repo.DepartmentInUse(id)
	if err != nil {
		s.logger.Error("failed to check department usage", "error", err, "department_id", id)
		return internal.NewInternalError("failed to delete department", err)
	}
	if inUse {
		return internal.NewConflictError("department is still referenced", internal.ErrCodeResourceInUse)
	}

	if err := s.repo.DeleteDepartment(id); err != nil {
		s.logger.Error("failed to delete department", "error", err, "department_id", id)
		return internal.NewInternalError("failed to delete department", err)
	}
	return nil
}

// DepartmentExists reports through the usual error taxonomy so other
// services can verify foreign keys before writing.
func (s *Service) DepartmentExists(id int64) error {
	if _, err := s.repo.GetDepartment(id); err != nil {
		return internal.ErrDepartmentNotFound
	}
	return nil
}

func (s *Service) JobExists(id int64) error {
	if _, err := s.repo.GetJob(id); err != nil {
		return internal.ErrJobNotFound
	}
	return nil
}

func (s *Service) CreateJob(dto JobDTO) (*Job, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.DepartmentID != nil {
		if _, err := s.repo.GetDepartment(*dto.DepartmentID); err != nil {
			return nil, internal.ErrDepartmentNotFound
		}
	}

	j := &Job{Name: dto.Name, DepartmentID: dto.DepartmentID}
	if err := s.repo.CreateJob(j); err != nil {
		s.logger.Error("failed to create job", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("failed to create job", err)
	}

	s.logger.Info("job created", "job_id", j.ID, "name", j.Name)
	return j, nil
}

func (s *Service) ListJobs(departmentID int64) ([]*Job, error) {
	jobs, err := s.repo.ListJobs(departmentID)
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err)
		return nil, internal.NewInternalError("failed to list jobs", err)
	}
	return jobs, nil
}

func (s *Service) UpdateJob(id int64, dto JobDTO) (*Job, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	j, err := s.repo.GetJob(id)
	if err != nil {
		return nil, internal.ErrJobNotFound
	}

	if dto.DepartmentID != nil {
		if _, err := s.repo.GetDepartment(*dto.DepartmentID); err != nil {
			return nil, internal.ErrDepartmentNotFound
		}
	}

	j.Name = dto.Name
	j.DepartmentID = dto.DepartmentID
	if err := s.repo.UpdateJob(j); err != nil {
		s.logger.Error("failed to update job", "error", err, "job_id", id)
		return nil, internal.NewInternalError("failed to update job", err)
	}
	return j, nil
}

func (s *Service) DeleteJob(id int64) error {
	if _, err := s.repo.GetJob(id); err != nil {
		return internal.ErrJobNotFound
	}

	inUse, err := s.repo.JobInUse(id)
	if err != nil {
		s.logger.Error("failed to check job usage", "error", err, "job_id", id)
		return internal.NewInternalError("failed to delete job", err)
	}
	if inUse {
		return internal.NewConflictError("job is still referenced", internal.ErrCodeResourceInUse)
	}

	if err := s.repo.DeleteJob(id); err != nil {
		s.logger.Error("failed to delete job", "error", err, "job_id", id)
		return internal.NewInternalError("failed to delete job", err)
	}
	return nil
}
