package businessunit

import "github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"

type CreateBusinessUnitRequest struct {
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	LegalName *string `json:"legal_name,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *CreateBusinessUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 150 characters",
		})
	}

	if !validator.IsValidSlug(r.Slug) {
		errs = append(errs, validator.ValidationError{
			Field:   "slug",
			Message: "slug must be lowercase letters, numbers and single hyphens",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBusinessUnitRequest struct {
	ID        int64   `json:"-"`
	Name      *string `json:"name,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	LegalName *string `json:"legal_name,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *UpdateBusinessUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Slug != nil && !validator.IsValidSlug(*r.Slug) {
		errs = append(errs, validator.ValidationError{
			Field:   "slug",
			Message: "slug must be lowercase letters, numbers and single hyphens",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BusinessUnitResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	LegalName *string `json:"legal_name"`
	Active    bool    `json:"active"`
	// InReportScope is true when the slug is part of the system-business scope.
	InReportScope bool `json:"in_report_scope"`
}
