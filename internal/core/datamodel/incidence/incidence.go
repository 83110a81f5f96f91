package incidence

import "time"

const (
	StatusOpen      = "Open"
	StatusCompleted = "Completed"
)

// Incidence is an exceptional record: a worker-reported incident or a forced
// auto-checkout raised by the session guard. It moves Open → Completed once
// and is never reopened.
type Incidence struct {
	ID          int64      `gorm:"primaryKey"`
	EmployeeID  int64      `gorm:"column:employee_id;index;not null"`
	Type        string     `gorm:"column:type;not null"`
	Description string     `gorm:"column:description"`
	Status      string     `gorm:"column:status;default:'Open'"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at"`
}

func (Incidence) TableName() string {
	return "incidences"
}
