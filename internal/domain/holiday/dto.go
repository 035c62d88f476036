package holiday

import "github.com/UserShri98/employee-system/internal/pkg/validator"

type CreateHolidayRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"})
	}
	if r.Type != nil && !Type(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'NATIONAL' or 'OPTIONAL'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID          string
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"})
		}
	}
	if r.Type != nil && !Type(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'NATIONAL' or 'OPTIONAL'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Type:        string(h.Type),
		Description: h.Description,
	}
}

func ToResponses(holidays []Holiday) []HolidayResponse {
	result := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, ToResponse(h))
	}
	return result
}
