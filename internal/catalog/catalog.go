// Package catalog manages the department and job reference tables that the
// rest of the back office points at.
package catalog

import (
	"time"

	"github.com/colvahr/backoffice/internal"
)

type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Job struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DepartmentDTO struct {
	Name string `json:"name"`
}

func (dto DepartmentDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type JobDTO struct {
	Name         string `json:"name"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

func (dto JobDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
