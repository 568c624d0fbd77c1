package xsdgen

import "fmt"

// FileBuilder provides DSL methods for assembling a schema model by hand, for
// tests and for callers that bridge from their own schema parser.
type FileBuilder struct {
	file *File

	ErrHelper
}

// NewFile starts a schema model with no target namespace.
func NewFile() *FileBuilder {
	return &FileBuilder{file: &File{}}
}

// Namespace sets a prefixed target namespace.
func (b *FileBuilder) Namespace(prefix, uri string) *FileBuilder {
	b.file.TargetNamespace = &Namespace{Name: prefix, URI: uri}
	return b
}

// DefaultNamespace sets a target namespace without a prefix.
func (b *FileBuilder) DefaultNamespace(uri string) *FileBuilder {
	b.file.TargetNamespace = &Namespace{URI: uri}
	return b
}

// TupleStruct appends a tuple-struct declaration.
func (b *FileBuilder) TupleStruct(name string) *FileBuilder {
	if name == "" {
		return withErr(b, fmt.Errorf("tuple struct: %w", ErrEmptyName))
	}

	b.file.Types = append(b.file.Types, &TupleStruct{Name: name})
	return b
}

// Struct appends a struct declaration. The given functions are called in order
// to add fields.
func (b *FileBuilder) Struct(name string, fields ...func(s *StructBuilder)) *FileBuilder {
	if name == "" {
		return withErr(b, fmt.Errorf("struct: %w", ErrEmptyName))
	}

	sb := &StructBuilder{s: &Struct{Name: name}}
	for _, f := range fields {
		f(sb)
	}

	b.AddHandler(sb)
	b.file.Types = append(b.file.Types, sb.s)
	return b
}

// Enum appends an enum declaration with the given cases.
func (b *FileBuilder) Enum(name string, cases ...string) *FileBuilder {
	if name == "" {
		return withErr(b, fmt.Errorf("enum: %w", ErrEmptyName))
	}

	e := &Enum{Name: name, Cases: make([]EnumCase, 0, len(cases))}
	for _, c := range cases {
		if c == "" {
			b.AddError(fmt.Errorf("enum %s: case: %w", name, ErrEmptyName))
			continue
		}
		e.Cases = append(e.Cases, EnumCase{Name: c})
	}

	b.file.Types = append(b.file.Types, e)
	return b
}

// File returns the assembled model along with every error collected while
// building it.
func (b *FileBuilder) File() (*File, error) {
	return b.file, b.Err()
}

// StructBuilder adds fields to a struct under construction.
type StructBuilder struct {
	s *Struct

	ErrHelper
}

// Field appends a field with the given source.
func (sb *StructBuilder) Field(name string, source FieldSource) *StructBuilder {
	if name == "" {
		return withErr(sb, fmt.Errorf("struct %s: field: %w", sb.s.Name, ErrEmptyName))
	}

	sb.s.Fields = append(sb.s.Fields, StructField{Name: name, Source: source})
	return sb
}

// Attribute appends a field that came from an attribute.
func (sb *StructBuilder) Attribute(name string) *StructBuilder {
	return sb.Field(name, SourceAttribute)
}

// Element appends a field that came from an element.
func (sb *StructBuilder) Element(name string) *StructBuilder {
	return sb.Field(name, SourceElement)
}

// Choice appends a field that came from a choice group.
func (sb *StructBuilder) Choice(name string) *StructBuilder {
	return sb.Field(name, SourceChoice)
}

// Other appends a field that needs no directive.
func (sb *StructBuilder) Other(name string) *StructBuilder {
	return sb.Field(name, SourceOther)
}
