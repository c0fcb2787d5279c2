package apperr

import "errors"

var (
	ErrNotSchedule    = errors.New("not a schedule announcement")
	ErrNoMedia        = errors.New("no usable media attached")
	ErrWorkerNotFound = errors.New("worker not found in schedule")
)
