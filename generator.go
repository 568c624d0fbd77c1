package xsdgen

// Generator produces the serialization directive text attached to each
// generated declaration. Each backend implements it for one directive syntax.
//
// Every method is a pure function of the argument and the target namespace
// captured when the Generator was created. None of them fail: input that looks
// odd is rendered as-is rather than rejected. The returned text is placed
// immediately before the declaration it annotates and carries its own
// trailing newline when it is not empty.
type Generator interface {
	// TargetNamespace returns a copy of the captured target namespace or nil.
	TargetNamespace() *Namespace

	TupleStructAnnotation(*TupleStruct) string
	StructAnnotation(*Struct) string
	EnumAnnotation(*Enum) string
	FieldAnnotation(*StructField) string
	EnumCaseAnnotation(*EnumCase) string
}

// captureNamespace copies the target namespace so later changes to the
// schema model cannot leak into a generator.
func captureNamespace(ns *Namespace) *Namespace {
	if ns == nil {
		return nil
	}
	c := *ns
	return &c
}
