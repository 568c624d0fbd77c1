package xsdgen

// ConstructKind names the kind of declaration an Annotation belongs to.
type ConstructKind string

const (
	KindTupleStruct ConstructKind = "tuple_struct"
	KindStruct      ConstructKind = "struct"
	KindEnum        ConstructKind = "enum"
	KindField       ConstructKind = "field"
	KindEnumCase    ConstructKind = "enum_case"
)

// Annotation is the directive text produced for one construct.
type Annotation struct {
	Kind ConstructKind `yaml:"kind"`
	// Owner is the enclosing type for fields and enum cases.
	Owner string `yaml:"owner,omitempty"`
	Name  string `yaml:"name"`
	Text  string `yaml:"text"`
}

// Annotate asks g for the annotation of every declaration in f, in source
// order. Each struct or enum is followed by the annotations for its fields or
// cases. Fields whose annotation is empty are still listed so callers can line
// the results up with the declarations they generate.
func Annotate(g Generator, f *File) []Annotation {
	var anns []Annotation
	for _, decl := range f.Types {
		switch d := decl.(type) {
		case *TupleStruct:
			anns = append(anns, Annotation{
				Kind: KindTupleStruct,
				Name: d.Name,
				Text: g.TupleStructAnnotation(d),
			})
		case *Struct:
			anns = append(anns, Annotation{
				Kind: KindStruct,
				Name: d.Name,
				Text: g.StructAnnotation(d),
			})
			for i := range d.Fields {
				anns = append(anns, Annotation{
					Kind:  KindField,
					Owner: d.Name,
					Name:  d.Fields[i].Name,
					Text:  g.FieldAnnotation(&d.Fields[i]),
				})
			}
		case *Enum:
			anns = append(anns, Annotation{
				Kind: KindEnum,
				Name: d.Name,
				Text: g.EnumAnnotation(d),
			})
			for i := range d.Cases {
				anns = append(anns, Annotation{
					Kind:  KindEnumCase,
					Owner: d.Name,
					Name:  d.Cases[i].Name,
					Text:  g.EnumCaseAnnotation(&d.Cases[i]),
				})
			}
		}
	}
	return anns
}
