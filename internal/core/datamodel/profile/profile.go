// Package profile holds the one-to-one satellite tables seeded empty at
// employee onboarding. Each row is keyed by the owning employee id.
package profile

import "time"

type Contact struct {
	EmployeeID           int64     `gorm:"column:employee_id;primaryKey"`
	Address              string    `gorm:"column:address"`
	PhoneNumber          string    `gorm:"column:phone_number"`
	EmailPersonal        string    `gorm:"column:email_personal"`
	EmailCorporate       string    `gorm:"column:email_corporate"`
	EmergencyContactName string    `gorm:"column:emergency_contact_name"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (Contact) TableName() string {
	return "contact_profiles"
}

type Compensation struct {
	EmployeeID        int64     `gorm:"column:employee_id;primaryKey"`
	BankAccount       string    `gorm:"column:bank_account"`
	GrossAnnualSalary int64     `gorm:"column:gross_annual_salary"`
	ContractType      string    `gorm:"column:contract_type"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (Compensation) TableName() string {
	return "compensation_profiles"
}

type Academic struct {
	EmployeeID     int64     `gorm:"column:employee_id;primaryKey"`
	EducationLevel string    `gorm:"column:education_level"`
	Degree         string    `gorm:"column:degree"`
	Certifications string    `gorm:"column:certifications"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (Academic) TableName() string {
	return "academic_profiles"
}

type Administrative struct {
	EmployeeID           int64     `gorm:"column:employee_id;primaryKey"`
	NationalID           string    `gorm:"column:national_id"`
	SocialSecurityNumber string    `gorm:"column:social_security_number"`
	SeniorityDate        string    `gorm:"column:seniority_date"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (Administrative) TableName() string {
	return "administrative_profiles"
}

// Assignment links an employee to the job/department catalog and carries the
// contracted weekly hours.
type Assignment struct {
	EmployeeID   int64     `gorm:"column:employee_id;primaryKey"`
	JobID        *int64    `gorm:"column:job_id;index"`
	DepartmentID *int64    `gorm:"column:department_id;index"`
	WeeklyHours  float64   `gorm:"column:weekly_hours"`
	StartDate    string    `gorm:"column:start_date"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Assignment) TableName() string {
	return "assignment_profiles"
}
