package employee

import "time"

// Employee is the identity anchor of the whole system. The 4-digit PIN is the
// only credential the clock and incidence endpoints accept; it is unique
// across all employees.
type Employee struct {
	ID          int64     `gorm:"primaryKey"`
	FullName    string    `gorm:"column:full_name;not null"`
	DateOfBirth string    `gorm:"column:date_of_birth"`
	Gender      string    `gorm:"column:gender"`
	PinCode     string    `gorm:"column:pin_code;uniqueIndex;not null"`
	Photo       *string   `gorm:"column:photo"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
