package attendance

import (
	"time"

	"github.com/colvahr/backoffice/internal"
)

type PunchDTO struct {
	PinCode string `json:"pin_code"`
}

func (dto PunchDTO) Validate() error {
	if dto.PinCode == "" {
		return internal.NewValidationError("pin_code is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type PunchResponse struct {
	Message  string `json:"message"`
	Employee string `json:"employee"`
	Working  bool   `json:"working"`
}

type InsertEventDTO struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Working    bool   `json:"working"`
}

func (dto InsertEventDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	return validateDateTime(dto.Date, dto.Time)
}

type UpdateEventDTO struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Working bool   `json:"working"`
}

func (dto UpdateEventDTO) Validate() error {
	return validateDateTime(dto.Date, dto.Time)
}

func validateDateTime(date, timeOfDay string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return internal.NewValidationError("date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
		return internal.NewValidationError("time must be HH:MM:SS", internal.ErrCodeInvalidTime)
	}
	return nil
}

// ActiveEmployee is one row of the currently-clocked-in listing.
type ActiveEmployee struct {
	EmployeeID int64  `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// NocturnalReport totals the worked seconds falling inside the nightly
// window for one employee and month.
type NocturnalReport struct {
	EmployeeID int64  `json:"employee_id"`
	Month      string `json:"month"`
	Seconds    int    `json:"seconds"`
	Duration   string `json:"duration"`
}
