package problems

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("problems: unsupported format")

	// ErrInvalidProblem indicates a problem definition failed validation.
	ErrInvalidProblem = errors.New("problems: invalid problem")

	// ErrEmptySet indicates a file without any problem.
	ErrEmptySet = errors.New("problems: no problems defined")
)
