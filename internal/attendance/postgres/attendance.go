package postgres

import (
	"errors"
	"time"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/attendance"
	attendanceDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/attendance"
	"gorm.io/gorm"
)

// AttendanceRepository implements the attendance.Repository interface using
// GORM. The textual date (YYYY-MM-DD) and time (HH:MM:SS) columns order
// lexicographically, so the canonical (date, time, id) sort happens in SQL.
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Insert(e *attendance.Event) error {
	model := attendance.ToDataModel(e)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	e.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AttendanceRepository) GetByID(id int64) (*attendance.Event, error) {
	var model attendanceDatamodel.Event
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEventNotFound
		}
		return nil, err
	}
	return attendance.FromDataModel(&model), nil
}

func (r *AttendanceRepository) Update(e *attendance.Event) error {
	e.UpdatedAt = time.Now()
	return r.db.Save(attendance.ToDataModel(e)).Error
}

func (r *AttendanceRepository) Delete(id int64) error {
	return r.db.Delete(&attendanceDatamodel.Event{}, id).Error
}

func (r *AttendanceRepository) ListForEmployee(employeeID int64) ([]*attendance.Event, error) {
	var models []*attendanceDatamodel.Event
	err := r.db.Where("employee_id = ?", employeeID).
		Order("date ASC, time ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return attendance.FromDataModelSlice(models), nil
}

func (r *AttendanceRepository) LatestForEmployee(employeeID int64) (*attendance.Event, error) {
	var model attendanceDatamodel.Event
	err := r.db.Where("employee_id = ?", employeeID).
		Order("date DESC, time DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return attendance.FromDataModel(&model), nil
}

// OpenSessions returns, for every employee whose latest event is a check-in,
// that latest event.
func (r *AttendanceRepository) OpenSessions() ([]*attendance.Event, error) {
	var models []*attendanceDatamodel.Event
	err := r.db.
		Where("working = ?", true).
		Where(`id = (SELECT a2.id FROM attendance_events a2
			WHERE a2.employee_id = attendance_events.employee_id
			ORDER BY a2.date DESC, a2.time DESC, a2.id DESC LIMIT 1)`).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return attendance.FromDataModelSlice(models), nil
}

func (r *AttendanceRepository) ActiveEmployees(department string) ([]*attendance.ActiveEmployee, error) {
	query := r.db.Table("attendance_events").
		Select(`attendance_events.employee_id, employees.full_name,
			COALESCE(departments.name, '') AS department,
			attendance_events.date, attendance_events.time`).
		Joins("JOIN employees ON employees.id = attendance_events.employee_id").
		Joins("LEFT JOIN assignment_profiles ON assignment_profiles.employee_id = employees.id").
		Joins("LEFT JOIN departments ON departments.id = assignment_profiles.department_id").
		Where("attendance_events.working = ?", true).
		Where(`attendance_events.id = (SELECT a2.id FROM attendance_events a2
			WHERE a2.employee_id = attendance_events.employee_id
			ORDER BY a2.date DESC, a2.time DESC, a2.id DESC LIMIT 1)`).
		Order("employees.full_name ASC")

	if department != "" {
		query = query.Where("departments.name = ?", department)
	}

	var active []*attendance.ActiveEmployee
	if err := query.Scan(&active).Error; err != nil {
		return nil, err
	}
	return active, nil
}

func (r *AttendanceRepository) UpdateComputed(id int64, active bool, daily, weekly, monthly string) error {
	return r.db.Model(&attendanceDatamodel.Event{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     active,
			"daily":      daily,
			"weekly":     weekly,
			"monthly":    monthly,
			"updated_at": time.Now(),
		}).Error
}

// Transaction runs fn against a repository bound to one transaction; the
// atomic recompute path wraps a whole replay in it.
func (r *AttendanceRepository) Transaction(fn func(attendance.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&AttendanceRepository{db: tx})
	})
}
