package error

import "errors"

var (
	ErrInvalidTargetURL = errors.New("invalid target URL")
	ErrInvalidPath      = errors.New("invalid route path")
)
