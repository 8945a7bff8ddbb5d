package deeplink

import "fmt"

// InvalidInputError indicates the deep link cannot be built from the given
// inputs. It is raised before any navigation side effect.
type InvalidInputError struct {
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// OpenError indicates the browser tab could not be opened or navigated.
type OpenError struct {
	URL   string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open tab for %s: %v", e.URL, e.Cause)
}

func (e *OpenError) Unwrap() error {
	return e.Cause
}
