package postgres

import (
	"errors"
	"time"

	"github.com/colvahr/backoffice/internal"
	attendanceDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/employee"
	incidenceDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/incidence"
	leaveDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/leave"
	profileDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/profile"
	"github.com/colvahr/backoffice/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

// Create inserts the employee and seeds its empty one-to-one profile rows in
// one transaction, mirroring the onboarding flow.
func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	model := employee.ToDataModel(emp)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		id := model.ID
		if err := tx.Create(&profileDatamodel.Contact{EmployeeID: id}).Error; err != nil {
			return err
		}
		if err := tx.Create(&profileDatamodel.Compensation{EmployeeID: id}).Error; err != nil {
			return err
		}
		if err := tx.Create(&profileDatamodel.Academic{EmployeeID: id}).Error; err != nil {
			return err
		}
		if err := tx.Create(&profileDatamodel.Administrative{EmployeeID: id}).Error; err != nil {
			return err
		}
		return tx.Create(&profileDatamodel.Assignment{EmployeeID: id}).Error
	})
	if err != nil {
		return err
	}

	emp.ID = model.ID
	emp.CreatedAt = model.CreatedAt
	emp.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var model employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&model), nil
}

func (r *EmployeeRepository) GetByPin(pin string) (*employee.Employee, error) {
	var model employeeDatamodel.Employee
	err := r.db.Where("pin_code = ?", pin).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPinNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&model), nil
}

func (r *EmployeeRepository) GetAll(department string) ([]*employee.Employee, error) {
	var models []*employeeDatamodel.Employee

	query := r.db.Model(&employeeDatamodel.Employee{}).Order("full_name ASC")
	if department != "" {
		query = query.
			Joins("JOIN assignment_profiles ON assignment_profiles.employee_id = employees.id").
			Joins("JOIN departments ON departments.id = assignment_profiles.department_id").
			Where("departments.name = ?", department)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return employee.FromDataModelSlice(models), nil
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	emp.UpdatedAt = time.Now()
	return r.db.Save(employee.ToDataModel(emp)).Error
}

// Delete removes every dependent row first, the employee row last.
func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&attendanceDatamodel.Event{},
			&incidenceDatamodel.Incidence{},
			&leaveDatamodel.Leave{},
			&profileDatamodel.Contact{},
			&profileDatamodel.Compensation{},
			&profileDatamodel.Academic{},
			&profileDatamodel.Administrative{},
			&profileDatamodel.Assignment{},
		} {
			if err := tx.Where("employee_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&employeeDatamodel.Employee{}, id).Error
	})
}

func (r *EmployeeRepository) PinTaken(pin string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&employeeDatamodel.Employee{}).Where("pin_code = ?", pin)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
