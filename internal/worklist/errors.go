package worklist

import (
	"errors"
	"fmt"
)

// ErrStaleSearch indicates a search response that was superseded by a later
// RunSearch call before it completed. The working list is unchanged.
var ErrStaleSearch = errors.New("search superseded by a newer search")

// SearchError wraps a collaborator failure during RunSearch. The working
// list is guaranteed unchanged when this is returned.
type SearchError struct {
	Cause error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("company search failed: %v", e.Cause)
}

func (e *SearchError) Unwrap() error {
	return e.Cause
}
