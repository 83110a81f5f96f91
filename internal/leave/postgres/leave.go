package postgres

import (
	"errors"

	"github.com/colvahr/backoffice/internal"
	leaveDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/leave"
	"github.com/colvahr/backoffice/internal/leave"
	"gorm.io/gorm"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(l *leave.Leave) error {
	model := leave.ToDataModel(l)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	l.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *LeaveRepository) GetByID(id int64) (*leave.Leave, error) {
	var model leaveDatamodel.Leave
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrLeaveNotFound
		}
		return nil, err
	}
	return leave.FromDataModel(&model), nil
}

func (r *LeaveRepository) ListForEmployee(employeeID int64) ([]*leave.Leave, error) {
	var models []*leaveDatamodel.Leave
	err := r.db.Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(models), nil
}

func (r *LeaveRepository) ListAll() ([]*leave.Leave, error) {
	var models []*leaveDatamodel.Leave
	if err := r.db.Order("start_date DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(models), nil
}

func (r *LeaveRepository) Update(l *leave.Leave) error {
	return r.db.Model(&leaveDatamodel.Leave{}).
		Where("id = ?", l.ID).
		Updates(map[string]interface{}{
			"employee_id":   l.EmployeeID,
			"start_date":    l.StartDate,
			"duration_days": l.DurationDays,
			"leave_type":    l.LeaveType,
		}).Error
}

func (r *LeaveRepository) Delete(id int64) error {
	return r.db.Delete(&leaveDatamodel.Leave{}, id).Error
}
