package apperrors

import "errors"

var (
	ErrUnreadableFile     = errors.New("unreadable source file")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrMissingNameColumn  = errors.New("restaurant table has no name column")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)
