package postgres

import (
	"errors"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/catalog"
	catalogDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/catalog"
	profileDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/profile"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateDepartment(d *catalog.Department) error {
	model := &catalogDatamodel.Department{Name: d.Name}
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	d.ID = model.ID
	d.CreatedAt = model.CreatedAt
	d.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CatalogRepository) GetDepartment(id int64) (*catalog.Department, error) {
	var model catalogDatamodel.Department
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &catalog.Department{ID: model.ID, Name: model.Name, CreatedAt: model.CreatedAt, UpdatedAt: model.UpdatedAt}, nil
}

func (r *CatalogRepository) ListDepartments() ([]*catalog.Department, error) {
	var models []*catalogDatamodel.Department
	if err := r.db.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	departments := make([]*catalog.Department, len(models))
	for i, m := range models {
		departments[i] = &catalog.Department{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	}
	return departments, nil
}

func (r *CatalogRepository) UpdateDepartment(d *catalog.Department) error {
	return r.db.Model(&catalogDatamodel.Department{}).
		Where("id = ?", d.ID).
		Update("name", d.Name).Error
}

func (r *CatalogRepository) DeleteDepartment(id int64) error {
	return r.db.Delete(&catalogDatamodel.Department{}, id).Error
}

func (r *CatalogRepository) DepartmentInUse(id int64) (bool, error) {
	var jobCount int64
	if err := r.db.Model(&catalogDatamodel.Job{}).
		Where("department_id = ?", id).
		Count(&jobCount).Error; err != nil {
		return false, err
	}
	if jobCount > 0 {
		return true, nil
	}

	var assignmentCount int64
	if err := r.db.Model(&profileDatamodel.Assignment{}).
		Where("department_id = ?", id).
		Count(&assignmentCount).Error; err != nil {
		return false, err
	}
	return assignmentCount > 0, nil
}

func (r *CatalogRepository) CreateJob(j *catalog.Job) error {
	model := &catalogDatamodel.Job{Name: j.Name, DepartmentID: j.DepartmentID}
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	j.ID = model.ID
	j.CreatedAt = model.CreatedAt
	j.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CatalogRepository) GetJob(id int64) (*catalog.Job, error) {
	var model catalogDatamodel.Job
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrJobNotFound
		}
		return nil, err
	}
	return &catalog.Job{ID: model.ID, Name: model.Name, DepartmentID: model.DepartmentID, CreatedAt: model.CreatedAt, UpdatedAt: model.UpdatedAt}, nil
}

func (r *CatalogRepository) ListJobs(departmentID int64) ([]*catalog.Job, error) {
	query := r.db.Order("name ASC")
	if departmentID > 0 {
		query = query.Where("department_id = ?", departmentID)
	}

	var models []*catalogDatamodel.Job
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	jobs := make([]*catalog.Job, len(models))
	for i, m := range models {
		jobs[i] = &catalog.Job{ID: m.ID, Name: m.Name, DepartmentID: m.DepartmentID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	}
	return jobs, nil
}

func (r *CatalogRepository) UpdateJob(j *catalog.Job) error {
	return r.db.Model(&catalogDatamodel.Job{}).
		Where("id = ?", j.ID).
		Updates(map[string]interface{}{
			"name":          j.Name,
			"department_id": j.DepartmentID,
		}).Error
}

func (r *CatalogRepository) DeleteJob(id int64) error {
	return r.db.Delete(&catalogDatamodel.Job{}, id).Error
}

func (r *CatalogRepository) JobInUse(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&profileDatamodel.Assignment{}).
		Where("job_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
