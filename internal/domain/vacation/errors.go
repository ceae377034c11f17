package vacation

import "errors"

var (
	ErrShiftExceptionNotFound  = errors.New("shift exception not found")
	ErrShiftExceptionDuplicate = errors.New("employee already has a shift exception on this date")
	ErrShiftExceptionEmployee  = errors.New("shift exception references an unknown employee")
	ErrInvalidYear             = errors.New("year must be between 1900 and 2999")
)
