package xsdgen

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// BackendYaserde selects YaserdeGenerator.
	BackendYaserde = "yaserde"
	// BackendOpenAPI selects OpenAPIGenerator.
	BackendOpenAPI = "openapi"
)

// DefaultBackend is used when no backend is named.
const DefaultBackend = BackendYaserde

var backends = map[string]func(*File) Generator{
	BackendYaserde: func(f *File) Generator { return NewYaserdeGenerator(f) },
	BackendOpenAPI: func(f *File) Generator { return NewOpenAPIGenerator(f) },
}

// Backends lists the names accepted by NewGenerator in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewGenerator creates the named backend for the given file. An empty name
// selects DefaultBackend.
func NewGenerator(backend string, f *File) (Generator, error) {
	name := strings.ToLower(strings.TrimSpace(backend))
	if name == "" {
		name = DefaultBackend
	}

	mk, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}

	return mk(f), nil
}
