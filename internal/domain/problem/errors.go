package problem

import "errors"

var (
	ErrProblemLogNotFound = errors.New("problem log not found")
	ErrAlreadySolved      = errors.New("problem log already marked solved")
)
