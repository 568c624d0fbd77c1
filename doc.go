// Package xsdgen decides which serialization directives a schema compiler
// attaches to the types it generates from an XML Schema.
//
// A File is the parsed schema model. A Generator, created per File, returns
// the directive text for each tuple struct, struct, enum, field, and enum
// case. Field names are resolved against the target namespace by
// ResolveFieldName: an explicit "prefix:local" always wins, elements fall back
// to the target namespace's prefix, and attributes stay unqualified.
//
//	f, _ := xsdgen.LoadFile("onvif.yaml")
//	g := xsdgen.NewYaserdeGenerator(f)
//	for _, a := range xsdgen.Annotate(g, f) {
//		fmt.Print(a.Text)
//	}
package xsdgen
