package xsdgen

import "fmt"

const (
	yaserdeTupleDerive  = "#[derive(Default, PartialEq, Debug, UtilsTupleSerDe)]\n"
	yaserdeStructDerive = "#[derive(Default, PartialEq, Debug, YaSerialize, YaDeserialize)]\n"
	yaserdeEnumDerive   = "#[derive(PartialEq, Debug, YaSerialize, YaDeserialize)]\n"
	yaserdeFlatten      = "    #[yaserde(flatten)]\n"
)

// YaserdeGenerator emits derive and #[yaserde(...)] attributes for Rust types
// serialized by the yaserde crate.
type YaserdeGenerator struct {
	targetNS *Namespace
}

var _ Generator = (*YaserdeGenerator)(nil)

// NewYaserdeGenerator creates a generator for the given schema file, capturing
// its target namespace.
func NewYaserdeGenerator(f *File) *YaserdeGenerator {
	var ns *Namespace
	if f != nil {
		ns = f.TargetNamespace
	}
	return NewYaserdeGeneratorFor(ns)
}

// NewYaserdeGeneratorFor creates a generator for the given target namespace,
// which may be nil.
func NewYaserdeGeneratorFor(targetNS *Namespace) *YaserdeGenerator {
	return &YaserdeGenerator{targetNS: captureNamespace(targetNS)}
}

func (g *YaserdeGenerator) TargetNamespace() *Namespace {
	return captureNamespace(g.targetNS)
}

func (g *YaserdeGenerator) TupleStructAnnotation(*TupleStruct) string {
	return yaserdeTupleDerive
}

func (g *YaserdeGenerator) StructAnnotation(*Struct) string {
	switch {
	case g.targetNS == nil:
		return yaserdeStructDerive + "#[yaserde()]\n"
	case g.targetNS.HasName():
		return fmt.Sprintf("%s#[yaserde(prefix = \"%s\", namespace = \"%s: %s\")]\n",
			yaserdeStructDerive, g.targetNS.Name, g.targetNS.Name, g.targetNS.URI)
	default:
		return fmt.Sprintf("%s#[yaserde(namespace = \"%s\")]\n",
			yaserdeStructDerive, g.targetNS.URI)
	}
}

func (g *YaserdeGenerator) EnumAnnotation(*Enum) string {
	return yaserdeEnumDerive
}

func (g *YaserdeGenerator) FieldAnnotation(sf *StructField) string {
	switch sf.Source {
	case SourceChoice:
		return yaserdeFlatten
	case SourceAttribute:
		return yaserdeAttribute(ResolveFieldName(sf.Name, sf.Source, g.targetNS))
	case SourceElement:
		return yaserdeElement(ResolveFieldName(sf.Name, sf.Source, g.targetNS))
	default:
		return ""
	}
}

func (g *YaserdeGenerator) EnumCaseAnnotation(ec *EnumCase) string {
	return yaserdeRename(ec.Name)
}

func yaserdeAttribute(rn ResolvedName) string {
	if rn.HasPrefix {
		return fmt.Sprintf("    #[yaserde(attribute, prefix = \"%s\", rename = \"%s\")]\n", rn.Prefix, rn.Local)
	}
	return fmt.Sprintf("    #[yaserde(attribute, rename = \"%s\")]\n", rn.Local)
}

func yaserdeElement(rn ResolvedName) string {
	if rn.HasPrefix {
		return fmt.Sprintf("    #[yaserde(prefix = \"%s\", rename = \"%s\")]\n", rn.Prefix, rn.Local)
	}
	return yaserdeRename(rn.Local)
}

func yaserdeRename(name string) string {
	return fmt.Sprintf("    #[yaserde(rename = \"%s\")]\n", name)
}
