package report

import "fmt"

// InvalidInputError marks a submission that fails field validation or
// names a country/stage outside the catalogs. It is raised before any
// external call or side effect, and surfaces to clients as a 4xx.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidInput(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Message: fmt.Sprintf(format, args...)}
}
