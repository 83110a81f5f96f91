package employee

import (
	"time"

	employeeDatamodel "github.com/colvahr/backoffice/internal/core/datamodel/employee"
)

type Employee struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	PinCode     string    `json:"pin_code"`
	Photo       *string   `json:"photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:          e.ID,
		FullName:    e.FullName,
		DateOfBirth: e.DateOfBirth,
		Gender:      e.Gender,
		PinCode:     e.PinCode,
		Photo:       e.Photo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:          e.ID,
		FullName:    e.FullName,
		DateOfBirth: e.DateOfBirth,
		Gender:      e.Gender,
		PinCode:     e.PinCode,
		Photo:       e.Photo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
