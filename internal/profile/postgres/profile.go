package postgres

import (
	"errors"

	"github.com/colvahr/backoffice/internal"
	profileDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/profile"
	"github.com/colvahr/backoffice/internal/profile"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) profile.Repository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetContact(employeeID int64) (*profile.Contact, error) {
	var model profileDatamodel.Contact
	if err := r.db.Where("employee_id = ?", employeeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile.Contact{
		EmployeeID:           model.EmployeeID,
		Address:              model.Address,
		PhoneNumber:          model.PhoneNumber,
		EmailPersonal:        model.EmailPersonal,
		EmailCorporate:       model.EmailCorporate,
		EmergencyContactName: model.EmergencyContactName,
		UpdatedAt:            model.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) UpdateContact(c *profile.Contact) error {
	return r.db.Model(&profileDatamodel.Contact{}).
		Where("employee_id = ?", c.EmployeeID).
		Updates(map[string]interface{}{
			"address":                c.Address,
			"phone_number":           c.PhoneNumber,
			"email_personal":         c.EmailPersonal,
			"email_corporate":        c.EmailCorporate,
			"emergency_contact_name": c.EmergencyContactName,
		}).Error
}

func (r *ProfileRepository) GetCompensation(employeeID int64) (*profile.Compensation, error) {
	var model profileDatamodel.Compensation
	if err := r.db.Where("employee_id = ?", employeeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile.Compensation{
		EmployeeID:        model.EmployeeID,
		BankAccount:       model.BankAccount,
		GrossAnnualSalary: model.GrossAnnualSalary,
		ContractType:      model.ContractType,
		UpdatedAt:         model.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) UpdateCompensation(c *profile.Compensation) error {
	return r.db.Model(&profileDatamodel.Compensation{}).
		Where("employee_id = ?", c.EmployeeID).
		Updates(map[string]interface{}{
			"bank_account":        c.BankAccount,
			"gross_annual_salary": c.GrossAnnualSalary,
			"contract_type":       c.ContractType,
		}).Error
}

func (r *ProfileRepository) GetAcademic(employeeID int64) (*profile.Academic, error) {
	var model profileDatamodel.Academic
	if err := r.db.Where("employee_id = ?", employeeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile.Academic{
		EmployeeID:     model.EmployeeID,
		EducationLevel: model.EducationLevel,
		Degree:         model.Degree,
		Certifications: model.Certifications,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) UpdateAcademic(a *profile.Academic) error {
	return r.db.Model(&profileDatamodel.Academic{}).
		Where("employee_id = ?", a.EmployeeID).
		Updates(map[string]interface{}{
			"education_level": a.EducationLevel,
			"degree":          a.Degree,
			"certifications":  a.Certifications,
		}).Error
}

func (r *ProfileRepository) GetAdministrative(employeeID int64) (*profile.Administrative, error) {
	var model profileDatamodel.Administrative
	if err := r.db.Where("employee_id = ?", employeeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile.Administrative{
		EmployeeID:           model.EmployeeID,
		NationalID:           model.NationalID,
		SocialSecurityNumber: model.SocialSecurityNumber,
		SeniorityDate:        model.SeniorityDate,
		UpdatedAt:            model.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) UpdateAdministrative(a *profile.Administrative) error {
	return r.db.Model(&profileDatamodel.Administrative{}).
		Where("employee_id = ?", a.EmployeeID).
		Updates(map[string]interface{}{
			"national_id":            a.NationalID,
			"social_security_number": a.SocialSecurityNumber,
			"seniority_date":         a.SeniorityDate,
		}).Error
}

func (r *ProfileRepository) GetAssignment(employeeID int64) (*profile.Assignment, error) {
	var model profileDatamodel.Assignment
	if err := r.db.Where("employee_id = ?", employeeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile.Assignment{
		EmployeeID:   model.EmployeeID,
		JobID:        model.JobID,
		DepartmentID: model.DepartmentID,
		WeeklyHours:  model.WeeklyHours,
		StartDate:    model.StartDate,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) UpdateAssignment(a *profile.Assignment) error {
	return r.db.Model(&profileDatamodel.Assignment{}).
		Where("employee_id = ?", a.EmployeeID).
		Updates(map[string]interface{}{
			"job_id":        a.JobID,
			"department_id": a.DepartmentID,
			"weekly_hours":  a.WeeklyHours,
			"start_date":    a.StartDate,
		}).Error
}
