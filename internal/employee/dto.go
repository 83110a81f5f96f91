package employee

import (
	"time"
	"unicode"

	"github.com/colvahr/backoffice/internal"
)

type CreateEmployeeDTO struct {
	FullName    string  `json:"full_name"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender"`
	PinCode     string  `json:"pin_code"`
	Photo       *string `json:"photo,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if dto.FullName == "" {
		return internal.NewValidationError("full_name is required", internal.ErrCodeValidationFailed)
	}
	if err := validatePin(dto.PinCode); err != nil {
		return err
	}
	if dto.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", dto.DateOfBirth); err != nil {
			return internal.NewValidationError("date_of_birth must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

type UpdateEmployeeDTO struct {
	FullName    string  `json:"full_name"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender"`
	PinCode     string  `json:"pin_code"`
	Photo       *string `json:"photo,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() error {
	return CreateEmployeeDTO{
		FullName:    dto.FullName,
		DateOfBirth: dto.DateOfBirth,
		Gender:      dto.Gender,
		PinCode:     dto.PinCode,
	}.Validate()
}

func validatePin(pin string) error {
	if len(pin) != 4 {
		return internal.NewValidationError("pin_code must be exactly 4 digits", internal.ErrCodeInvalidPin)
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return internal.NewValidationError("pin_code must be exactly 4 digits", internal.ErrCodeInvalidPin)
		}
	}
	return nil
}
