package incidence

import "github.com/colvahr/backoffice/internal"

type ReportIncidenceDTO struct {
	PinCode     string `json:"pin_code"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

func (dto ReportIncidenceDTO) Validate() error {
	if dto.PinCode == "" {
		return internal.NewValidationError("pin_code is required", internal.ErrCodeValidationFailed)
	}
	if dto.Type == "" {
		return internal.NewValidationError("type is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type ListOpenFilter struct {
	JobID      int64
	Department string
}
