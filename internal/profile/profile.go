// Package profile exposes the per-employee satellite records (contact,
// compensation, academic, administrative, assignment). Rows are created
// empty at onboarding and only ever updated afterwards.
package profile

import (
	"time"

	"github.com/colvahr/backoffice/internal"
)

type Contact struct {
	EmployeeID           int64     `json:"employee_id"`
	Address              string    `json:"address"`
	PhoneNumber          string    `json:"phone_number"`
	EmailPersonal        string    `json:"email_personal"`
	EmailCorporate       string    `json:"email_corporate"`
	EmergencyContactName string    `json:"emergency_contact_name"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type Compensation struct {
	EmployeeID        int64     `json:"employee_id"`
	BankAccount       string    `json:"bank_account"`
	GrossAnnualSalary int64     `json:"gross_annual_salary"`
	ContractType      string    `json:"contract_type"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Academic struct {
	EmployeeID     int64     `json:"employee_id"`
	EducationLevel string    `json:"education_level"`
	Degree         string    `json:"degree"`
	Certifications string    `json:"certifications"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Administrative struct {
	EmployeeID           int64     `json:"employee_id"`
	NationalID           string    `json:"national_id"`
	SocialSecurityNumber string    `json:"social_security_number"`
	SeniorityDate        string    `json:"seniority_date"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type Assignment struct {
	EmployeeID   int64     `json:"employee_id"`
	JobID        *int64    `json:"job_id,omitempty"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	WeeklyHours  float64   `json:"weekly_hours"`
	StartDate    string    `json:"start_date,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ContactDTO struct {
	Address              string `json:"address"`
	PhoneNumber          string `json:"phone_number"`
	EmailPersonal        string `json:"email_personal"`
	EmailCorporate       string `json:"email_corporate"`
	EmergencyContactName string `json:"emergency_contact_name"`
}

type CompensationDTO struct {
	BankAccount       string `json:"bank_account"`
	GrossAnnualSalary int64  `json:"gross_annual_salary"`
	ContractType      string `json:"contract_type"`
}

func (dto CompensationDTO) Validate() error {
	if dto.GrossAnnualSalary < 0 {
		return internal.NewValidationError("gross_annual_salary must not be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}

type AcademicDTO struct {
	EducationLevel string `json:"education_level"`
	Degree         string `json:"degree"`
	Certifications string `json:"certifications"`
}

type AdministrativeDTO struct {
	NationalID           string `json:"national_id"`
	SocialSecurityNumber string `json:"social_security_number"`
	SeniorityDate        string `json:"seniority_date"`
}

func (dto AdministrativeDTO) Validate() error {
	if dto.SeniorityDate != "" {
		if _, err := time.Parse("2006-01-02", dto.SeniorityDate); err != nil {
			return internal.NewValidationError("seniority_date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

type AssignmentDTO struct {
	JobID        *int64  `json:"job_id,omitempty"`
	DepartmentID *int64  `json:"department_id,omitempty"`
	WeeklyHours  float64 `json:"weekly_hours"`
	StartDate    string  `json:"start_date,omitempty"`
}

func (dto AssignmentDTO) Validate() error {
	if dto.WeeklyHours < 0 {
		return internal.NewValidationError("weekly_hours must not be negative", internal.ErrCodeValidationFailed)
	}
	if dto.StartDate != "" {
		if _, err := time.Parse("2006-01-02", dto.StartDate); err != nil {
			return internal.NewValidationError("start_date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}
