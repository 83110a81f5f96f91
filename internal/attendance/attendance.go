package attendance

import (
	"time"

	attendanceDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/attendance"
	"github.com/colvahr/backoffice/internal/core/duration"
)

// IncidenceType is the type string written on guard- and cap-raised
// incidences; consumers match on the "auto-checkout" prefix.
const IncidenceType = "auto-checkout"

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"
)

// Event is one ledger row. Events for an employee ordered by (date, time, id)
// alternate check-in/check-out in healthy histories; the editor can break
// that transiently and the accumulator tolerates it.
type Event struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Working    bool      `json:"working"`
	Active     bool      `json:"active"`
	Daily      string    `json:"daily"`
	Weekly     string    `json:"weekly"`
	Monthly    string    `json:"monthly"`
	Vacation   int       `json:"vacation"`
	Forced     bool      `json:"forced"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Timestamp combines the textual date and time into a naive local timestamp.
// Rows with unparseable fields collapse to the zero time, which sorts first
// and contributes zero elapsed seconds, keeping the replay lenient.
func (e *Event) Timestamp() time.Time {
	t, err := time.ParseInLocation(timestampLayout, e.Date+" "+e.Time, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func newEvent(employeeID int64, at time.Time, working bool, vacation int) *Event {
	return &Event{
		EmployeeID: employeeID,
		Date:       at.Format(dateLayout),
		Time:       at.Format(timeLayout),
		Working:    working,
		Active:     working,
		Daily:      duration.Zero,
		Weekly:     duration.Zero,
		Monthly:    duration.Zero,
		Vacation:   vacation,
	}
}

func ToDataModel(e *Event) *attendanceDatamodel.Event {
	return &attendanceDatamodel.Event{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date,
		Time:       e.Time,
		Working:    e.Working,
		Active:     e.Active,
		Daily:      e.Daily,
		Weekly:     e.Weekly,
		Monthly:    e.Monthly,
		Vacation:   e.Vacation,
		Forced:     e.Forced,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromDataModel(e *attendanceDatamodel.Event) *Event {
	return &Event{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date,
		Time:       e.Time,
		Working:    e.Working,
		Active:     e.Active,
		Daily:      e.Daily,
		Weekly:     e.Weekly,
		Monthly:    e.Monthly,
		Vacation:   e.Vacation,
		Forced:     e.Forced,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func FromDataModelSlice(events []*attendanceDatamodel.Event) []*Event {
	result := make([]*Event, len(events))
	for i, e := range events {
		result[i] = FromDataModel(e)
	}
	return result
}
