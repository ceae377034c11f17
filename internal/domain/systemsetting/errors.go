package systemsetting

import "errors"

var (
	ErrSystemSettingNotFound = errors.New("no active system setting")
	ErrUnsupportedLogoFormat = errors.New("logo must be a png, jpeg or webp image")
	ErrLogoTooLarge          = errors.New("logo must not exceed 5MB")
	ErrLogoNotConfigured     = errors.New("no report logo is configured")
)
