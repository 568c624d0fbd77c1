package xsdgen

import (
	"errors"

	"github.com/zostay/go-std/set"
)

var (
	// ErrUnknownBackend is returned by NewGenerator for unrecognized backends.
	ErrUnknownBackend = errors.New("unknown annotation backend")

	// ErrUnknownFormat is returned for report formats other than text and yaml.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrUnknownSource is returned when a field source name is not recognized.
	ErrUnknownSource = errors.New("unknown field source")

	// ErrUnknownKind is returned when a type declaration kind is not recognized.
	ErrUnknownKind = errors.New("unknown declaration kind")

	// ErrEmptyName is returned when a declaration, field, or case has no name.
	ErrEmptyName = errors.New("empty name")
)

// ErrHandler collects errors while a schema model is built or loaded.
type ErrHandler interface {
	Err() error
	Errs() []error
	AddError(...error)
	AddHandler(...ErrHandler)
}

// ErrHelper is embedded by builders to accumulate errors instead of stopping
// at the first one. Errors, including those of nested handlers, are reported
// in the order they were added, so a nested handler's errors appear where the
// handler was added.
type ErrHelper struct {
	entries []errEntry
	nested  set.Set[ErrHandler]
}

// errEntry holds either an error or a nested handler.
type errEntry struct {
	err     error
	handler ErrHandler
}

func (e *ErrHelper) Err() error {
	return errors.Join(e.Errs()...)
}

func (e *ErrHelper) Errs() []error {
	var errs []error
	for _, ent := range e.entries {
		if ent.handler != nil {
			errs = append(errs, ent.handler.Errs()...)
			continue
		}
		errs = append(errs, ent.err)
	}

	return errs
}

// AddHandler adds nested handlers. A handler added more than once is only
// reported at its first position.
func (e *ErrHelper) AddHandler(handlers ...ErrHandler) {
	if e.nested == nil {
		e.nested = set.New[ErrHandler]()
	}

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if _, seen := e.nested[handler]; seen {
			continue
		}
		e.nested.Insert(handler)
		e.entries = append(e.entries, errEntry{handler: handler})
	}
}

func (e *ErrHelper) AddError(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		e.entries = append(e.entries, errEntry{err: err})
	}
}

func withErr[T ErrHandler](e T, errs ...error) T {
	e.AddError(errs...)
	return e
}
