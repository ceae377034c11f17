package systemsetting

import (
	"net/url"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
)

type UpdateSystemSettingRequest struct {
	LogoURL *string `json:"logo_url"`
}

func (r *UpdateSystemSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LogoURL != nil && *r.LogoURL != "" {
		u, err := url.Parse(*r.LogoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "logo_url",
				Message: "logo_url must be an absolute http(s) URL",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SystemSettingResponse struct {
	ID        int64   `json:"id"`
	LogoURL   *string `json:"logo_url"`
	UpdatedAt string  `json:"updated_at"`
}
