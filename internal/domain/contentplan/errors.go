package contentplan

import "errors"

var (
	ErrItemNotFound      = errors.New("content plan item not found")
	ErrInvalidItemStatus = errors.New("invalid content plan item status")
	ErrInvalidPeriod     = errors.New("invalid content plan period")
)
