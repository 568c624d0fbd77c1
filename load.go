package xsdgen

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

const (
	kindStruct      = "struct"
	kindTupleStruct = "tuple_struct"
	kindEnum        = "enum"
)

type fileDoc struct {
	TargetNamespace *Namespace `yaml:"target_namespace"`
	Types           []typeDoc  `yaml:"types"`
}

type typeDoc struct {
	Kind   string     `yaml:"kind"`
	Name   string     `yaml:"name"`
	Fields []fieldDoc `yaml:"fields"`
	Cases  []string   `yaml:"cases"`
}

type fieldDoc struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// UnmarshalYAML accepts either a mapping with name and source keys or a
// FieldTag scalar.
func (fd *fieldDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		tag := FieldTag(node.Value)
		fd.Name = tag.Name()
		fd.Source = tag.SourceName()
		return nil
	}

	type plain fieldDoc
	return node.Decode((*plain)(fd))
}

// ParseFile decodes a schema model from YAML. Every problem found is reported
// in the returned error, not just the first.
//
// The document looks like this:
//
//	target_namespace:
//	  name: tt
//	  uri: http://www.onvif.org/ver10/schema
//	types:
//	  - kind: struct
//	    name: Include
//	    fields:
//	      - name: href
//	        source: attribute
//	      - xop:Data,element
//	  - kind: tuple_struct
//	    name: Duration
//	  - kind: enum
//	    name: Protocol
//	    cases: [NTP, DHCP]
func ParseFile(data []byte) (*File, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schema model: %w", err)
	}

	b := NewFile()
	if ns := doc.TargetNamespace; ns != nil {
		if ns.HasName() {
			b.Namespace(ns.Name, ns.URI)
		} else {
			b.DefaultNamespace(ns.URI)
		}
	}

	for i, td := range doc.Types {
		switch strings.ToLower(strings.TrimSpace(td.Kind)) {
		case kindStruct:
			b.Struct(td.Name, func(sb *StructBuilder) {
				for _, fd := range td.Fields {
					src := SourceElement
					if fd.Source != "" {
						var err error
						src, err = ParseFieldSource(fd.Source)
						if err != nil {
							sb.AddError(fmt.Errorf("struct %s: field %s: %w", td.Name, fd.Name, err))
							continue
						}
					}
					sb.Field(fd.Name, src)
				}
			})
		case kindTupleStruct:
			b.TupleStruct(td.Name)
		case kindEnum:
			b.Enum(td.Name, td.Cases...)
		default:
			b.AddError(fmt.Errorf("types[%d]: %w %q", i, ErrUnknownKind, td.Kind))
		}
	}

	f, err := b.File()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// LoadFile reads and decodes a schema model file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema model load failed (%s): %w", path, err)
	}

	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("schema model parse failed (%s): %w", path, err)
	}

	return f, nil
}
