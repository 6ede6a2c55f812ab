package core

import (
	"errors"
	"fmt"
)

// Error taxonomy for the simulation core. Every per-entity failure wraps
// one of these sentinels so jobs can classify without string matching.
// None of them is fatal: the worst outcome of a tick is zero work done.
var (
	// ErrStoreUnavailable means the remote store could not be reached.
	// Callers degrade to the local store and continue.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound means a referenced agent, post or room is missing.
	// The unit of work is skipped; the batch continues.
	ErrNotFound = errors.New("entity not found")

	// ErrGenerationFailed means the external content call failed or timed
	// out. Callers substitute deterministic fallback content.
	ErrGenerationFailed = errors.New("content generation failed")

	// ErrInvalidRecord means a record is malformed (missing required
	// field). The single record is dropped; the batch continues.
	ErrInvalidRecord = errors.New("invalid record")
)

// EntityError ties a classified error to the entity it occurred on.
type EntityError struct {
	EntityID string
	Err      error
}

func (e EntityError) Error() string {
	return fmt.Sprintf("%s: %v", e.EntityID, e.Err)
}

func (e EntityError) Unwrap() error { return e.Err }

// ErrorCollector gathers per-entity errors during one job tick instead of
// aborting the batch. A tick with a non-empty collector still counts as
// completed.
type ErrorCollector struct {
	errs []EntityError
}

// Add records an error for an entity. Nil errors are ignored.
func (c *ErrorCollector) Add(entityID string, err error) {
	if err == nil {
		return
	}
	c.errs = append(c.errs, EntityError{EntityID: entityID, Err: err})
}

// Len reports how many errors were collected.
func (c *ErrorCollector) Len() int { return len(c.errs) }

// Errors returns the collected errors in occurrence order.
func (c *ErrorCollector) Errors() []EntityError { return c.errs }

// Err folds the collection into a single error, or nil when empty.
func (c *ErrorCollector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	joined := make([]error, len(c.errs))
	for i, e := range c.errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}

// Kind maps an error onto its taxonomy label for logging.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, ErrNotFound):
		return "entity_not_found"
	case errors.Is(err, ErrGenerationFailed):
		return "generation_failure"
	case errors.Is(err, ErrInvalidRecord):
		return "validation_failure"
	default:
		return "unknown"
	}
}
