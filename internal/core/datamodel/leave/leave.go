package leave

import "time"

// Leave is a leave-of-absence span ("baixa"): a start date plus a duration in
// days, independent of the attendance ledger.
type Leave struct {
	ID           int64     `gorm:"primaryKey"`
	EmployeeID   int64     `gorm:"column:employee_id;index;not null"`
	StartDate    string    `gorm:"column:start_date;not null"`
	DurationDays int       `gorm:"column:duration_days;not null"`
	LeaveType    string    `gorm:"column:leave_type;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Leave) TableName() string {
	return "leaves"
}
