package leave

import (
	"time"

	"github.com/colvahr/backoffice/internal"
	leaveDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/leave"
)

type Leave struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	StartDate    string    `json:"start_date"`
	DurationDays int       `json:"duration_days"`
	LeaveType    string    `json:"leave_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LeaveDTO struct {
	EmployeeID   int64  `json:"employee_id"`
	StartDate    string `json:"start_date"`
	DurationDays int    `json:"duration_days"`
	LeaveType    string `json:"leave_type"`
}

func (dto LeaveDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse("2006-01-02", dto.StartDate); err != nil {
		return internal.NewValidationError("start_date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if dto.DurationDays <= 0 {
		return internal.NewValidationError("duration_days must be positive", internal.ErrCodeValidationFailed)
	}
	if dto.LeaveType == "" {
		return internal.NewValidationError("leave_type is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func ToDataModel(l *Leave) *leaveDatamodel.Leave {
	return &leaveDatamodel.Leave{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		StartDate:    l.StartDate,
		DurationDays: l.DurationDays,
		LeaveType:    l.LeaveType,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func FromDataModel(l *leaveDatamodel.Leave) *Leave {
	return &Leave{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		StartDate:    l.StartDate,
		DurationDays: l.DurationDays,
		LeaveType:    l.LeaveType,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func FromDataModelSlice(leaves []*leaveDatamodel.Leave) []*Leave {
	result := make([]*Leave, len(leaves))
	for i, l := range leaves {
		result[i] = FromDataModel(l)
	}
	return result
}
