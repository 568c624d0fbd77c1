/*
xsdanno generates the serialization directives for the types a schema
compiler emits from an XML Schema.

Usage:

	xsdanno [-config file] [-backend name] [-format text|yaml] [-o file] [-j n] model.yaml ...

Each argument is a schema model file, the already-parsed form of one XSD
document (see xsdgen.ParseFile for the format). For every type declaration,
field, and enum case in the model, xsdanno prints the directive text the
selected backend attaches to it. Files are processed concurrently, each with
its own generator, and printed in argument order.

The yaserde backend emits Rust #[derive] and #[yaserde(...)] attributes. The
openapi backend emits OpenAPI XML objects.

Settings may also come from a TOML file given with -config:

	backend = "yaserde"
	format = "text"
	log_level = "info"
	concurrency = 4
	output = "annotations.txt"

The XSDANNO_BACKEND and XSDANNO_LOG_LEVEL environment variables override the
file, and flags override everything.
*/
package main
