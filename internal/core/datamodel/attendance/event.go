package attendance

import "time"

// Event is one row of the attendance ledger: a single clock action.
//
// Date and Time are stored as the textual YYYY-MM-DD / HH:MM:SS values the
// boundary exchanges; both orderings are lexicographic, so the canonical
// (date, time, id) sort works directly in SQL. Daily/Weekly/Monthly hold the
// running cumulative worked time for the containing period as of this event,
// formatted HH:MM:SS; they are owned by the recompute pass and never written
// by the editor.
type Event struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	Date       string    `gorm:"column:date;not null"`
	Time       string    `gorm:"column:time;not null"`
	Working    bool      `gorm:"column:working;not null"`
	Active     bool      `gorm:"column:active;not null"`
	Daily      string    `gorm:"column:daily;default:'00:00:00'"`
	Weekly     string    `gorm:"column:weekly;default:'00:00:00'"`
	Monthly    string    `gorm:"column:monthly;default:'00:00:00'"`
	Vacation   int       `gorm:"column:vacation;default:0"`
	Forced     bool      `gorm:"column:forced;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Event) TableName() string {
	return "attendance_events"
}
