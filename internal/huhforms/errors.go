package huhforms

import "errors"

var (
	errEmpty     = errors.New("task cannot be empty")
	errDelimiter = errors.New("task cannot contain '|' or line breaks")
)
