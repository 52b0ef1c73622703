package sources

import (
	"fmt"

	"github.com/phuslu/log"
)

// StatusError is returned when a remote source answers with a non-2xx status
type StatusError struct {
	Source     string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.Source, e.StatusCode, e.Status)
}

// Collect runs fn and returns its records. Errors and panics are logged and
// turned into an empty, non-nil slice, so callers never see a failure.
func Collect[T any](name string, fn func() ([]T, error)) (records []T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("source", name).Str("panic", fmt.Sprint(r)).Msg("source panicked")
			records = []T{}
		}
	}()

	records, err := fn()
	if err != nil {
		log.Warn().Str("source", name).Err(err).Msg("source failed, continuing with no records")
		return []T{}
	}
	if records == nil {
		records = []T{}
	}

	log.Info().Str("source", name).Int("count", len(records)).Msg("source loaded")
	return records
}
