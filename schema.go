package xsdgen

import (
	"fmt"
	"strings"
)

// Namespace is an XML namespace binding. A Namespace with an empty Name is a
// default namespace: it has a URI but no prefix bound to it.
type Namespace struct {
	Name string `yaml:"name,omitempty"`
	URI  string `yaml:"uri"`
}

// HasName returns true if the namespace binds a prefix.
func (ns Namespace) HasName() bool {
	return ns.Name != ""
}

// File is one parsed schema compilation unit. It is produced by the schema
// parser and must not be modified while annotations are generated for it.
type File struct {
	// TargetNamespace is nil when the schema declares no target namespace.
	TargetNamespace *Namespace

	// Types holds the type declarations in source order.
	Types []TypeDecl
}

// TypeDecl is one of *TupleStruct, *Struct, or *Enum.
type TypeDecl interface {
	DeclName() string
	typeDecl()
}

// TupleStruct is a generated type with a single unnamed value.
type TupleStruct struct {
	Name string
}

func (t *TupleStruct) DeclName() string { return t.Name }
func (*TupleStruct) typeDecl()          {}

// Struct is a generated type with named fields.
type Struct struct {
	Name   string
	Fields []StructField
}

func (s *Struct) DeclName() string { return s.Name }
func (*Struct) typeDecl()          {}

// StructField is a field of a Struct. The Name may be qualified, as in
// "tt:Include".
type StructField struct {
	Name   string
	Source FieldSource
}

// Enum is a generated enumeration.
type Enum struct {
	Name  string
	Cases []EnumCase
}

func (e *Enum) DeclName() string { return e.Name }
func (*Enum) typeDecl()          {}

// EnumCase is a single enumeration value.
type EnumCase struct {
	Name string
}

// FieldSource classifies where a struct field came from in the schema.
type FieldSource int

const (
	// SourceOther fields need no serialization directive.
	SourceOther FieldSource = iota
	// SourceAttribute fields came from xs:attribute.
	SourceAttribute
	// SourceElement fields came from xs:element.
	SourceElement
	// SourceChoice fields came from xs:choice and are flattened into the parent.
	SourceChoice
)

var fieldSourceNames = map[FieldSource]string{
	SourceOther:     "other",
	SourceAttribute: "attribute",
	SourceElement:   "element",
	SourceChoice:    "choice",
}

func (s FieldSource) String() string {
	if name, ok := fieldSourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FieldSource(%d)", int(s))
}

// ParseFieldSource converts a source name, as returned by String, back into a
// FieldSource. Matching is case-insensitive.
func ParseFieldSource(name string) (FieldSource, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for src, srcName := range fieldSourceNames {
		if srcName == want {
			return src, nil
		}
	}
	return SourceOther, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}
