package postgres

import (
	"errors"
	"time"

	"github.com/colvahr/backoffice/internal"
	incidenceDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/incidence"
	"github.com/colvahr/backoffice/internal/incidence"
	"gorm.io/gorm"
)

type IncidenceRepository struct {
	db *gorm.DB
}

func NewIncidenceRepository(db *gorm.DB) incidence.Repository {
	return &IncidenceRepository{db: db}
}

func (r *IncidenceRepository) Create(inc *incidence.Incidence) error {
	model := incidence.ToDataModel(inc)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	inc.ID = model.ID
	inc.CreatedAt = model.CreatedAt
	return nil
}

func (r *IncidenceRepository) GetByID(id int64) (*incidence.Incidence, error) {
	var model incidenceDatamodel.Incidence
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrIncidenceNotFound
		}
		return nil, err
	}
	return incidence.FromDataModel(&model), nil
}

func (r *IncidenceRepository) MarkCompleted(id int64, resolvedAt time.Time) error {
	return r.db.Model(&incidenceDatamodel.Incidence{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      incidenceDatamodel.StatusCompleted,
			"resolved_at": resolvedAt,
		}).Error
}

// ListOpen joins the catalog so callers can filter by job or department;
// completed incidences are never returned.
func (r *IncidenceRepository) ListOpen(filter incidence.ListOpenFilter) ([]*incidence.OpenListing, error) {
	query := r.db.Table("incidences").
		Select(`incidences.id, incidences.employee_id, employees.full_name,
			incidences.type, incidences.description, incidences.created_at,
			COALESCE(jobs.name, '') AS job,
			COALESCE(departments.name, '') AS department`).
		Joins("JOIN employees ON employees.id = incidences.employee_id").
		Joins("LEFT JOIN assignment_profiles ON assignment_profiles.employee_id = employees.id").
		Joins("LEFT JOIN jobs ON jobs.id = assignment_profiles.job_id").
		Joins("LEFT JOIN departments ON departments.id = assignment_profiles.department_id").
		Where("incidences.status = ?", incidenceDatamodel.StatusOpen).
		Order("incidences.created_at ASC")

	if filter.JobID > 0 {
		query = query.Where("assignment_profiles.job_id = ?", filter.JobID)
	}
	if filter.Department != "" {
		query = query.Where("departments.name = ?", filter.Department)
	}

	var listings []*incidence.OpenListing
	if err := query.Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
