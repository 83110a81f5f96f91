package incidence

import (
	"time"

	incidenceDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/incidence"
)

const (
	StatusOpen      = incidenceDatamodel.StatusOpen
	StatusCompleted = incidenceDatamodel.StatusCompleted
)

type Incidence struct {
	ID          int64      `json:"id"`
	EmployeeID  int64      `json:"employee_id"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// OpenListing is one row of the open-incidence view, joined against the
// employee and catalog tables for filtering and display.
type OpenListing struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	FullName    string    `json:"full_name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Job         string    `json:"job,omitempty"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToDataModel(i *Incidence) *incidenceDatamodel.Incidence {
	return &incidenceDatamodel.Incidence{
		ID:          i.ID,
		EmployeeID:  i.EmployeeID,
		Type:        i.Type,
		Description: i.Description,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		ResolvedAt:  i.ResolvedAt,
	}
}

func FromDataModel(i *incidenceDatamodel.Incidence) *Incidence {
	return &Incidence{
		ID:          i.ID,
		EmployeeID:  i.EmployeeID,
		Type:        i.Type,
		Description: i.Description,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		ResolvedAt:  i.ResolvedAt,
	}
}
