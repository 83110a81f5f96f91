package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TypeAutoCheckout    = "attendance.auto_checkout"
	TypeIncidenceOpened = "incidence.opened"
)

// NewAutoCheckout describes a session force-closed by the guard.
func NewAutoCheckout(employeeID int64, openedAt time.Time, capped string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      TypeAutoCheckout,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"employee_id":     employeeID,
			"session_opened":  openedAt.Format("2006-01-02 15:04:05"),
			"capped_duration": capped,
		},
	}
}

// NewIncidenceOpened fires whenever a new incidence enters the register,
// whether worker-reported or guard-raised.
func NewIncidenceOpened(incidenceID, employeeID int64, incidenceType string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      TypeIncidenceOpened,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"incidence_id":   incidenceID,
			"employee_id":    employeeID,
			"incidence_type": incidenceType,
			"summary":        fmt.Sprintf("incidence %d (%s) opened for employee %d", incidenceID, incidenceType, employeeID),
		},
	}
}
