package xsdgen

import (
	"github.com/pb33f/libopenapi/datamodel/high/base"
	"go.yaml.in/yaml/v4"
)

// OpenAPIGenerator renders annotations as OpenAPI XML objects in YAML, the
// text that belongs under the "xml" key of a schema. Constructs OpenAPI has no
// XML metadata for yield empty text.
type OpenAPIGenerator struct {
	targetNS *Namespace
}

var _ Generator = (*OpenAPIGenerator)(nil)

// NewOpenAPIGenerator creates a generator for the given schema file, capturing
// its target namespace.
func NewOpenAPIGenerator(f *File) *OpenAPIGenerator {
	var ns *Namespace
	if f != nil {
		ns = f.TargetNamespace
	}
	return &OpenAPIGenerator{targetNS: captureNamespace(ns)}
}

func (g *OpenAPIGenerator) TargetNamespace() *Namespace {
	return captureNamespace(g.targetNS)
}

func (g *OpenAPIGenerator) TupleStructAnnotation(*TupleStruct) string {
	return ""
}

func (g *OpenAPIGenerator) StructAnnotation(*Struct) string {
	x := &base.XML{}
	if g.targetNS != nil {
		x.Namespace = g.targetNS.URI
		x.Prefix = g.targetNS.Name
	}
	return renderXML(x)
}

func (g *OpenAPIGenerator) EnumAnnotation(*Enum) string {
	return ""
}

func (g *OpenAPIGenerator) FieldAnnotation(sf *StructField) string {
	switch sf.Source {
	case SourceAttribute, SourceElement:
		rn := ResolveFieldName(sf.Name, sf.Source, g.targetNS)
		x := &base.XML{
			Name:      rn.Local,
			Attribute: sf.Source == SourceAttribute,
		}
		if rn.HasPrefix {
			x.Prefix = rn.Prefix
		}
		return renderXML(x)
	default:
		return ""
	}
}

func (g *OpenAPIGenerator) EnumCaseAnnotation(ec *EnumCase) string {
	return renderXML(&base.XML{Name: ec.Name})
}

func renderXML(x *base.XML) string {
	bs, err := yaml.Marshal(x)
	if err != nil {
		// base.XML holds only strings and bools
		panic(err)
	}
	return string(bs)
}
