package xsdgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/xsdgen-go"
	"github.com/zostay/xsdgen-go/internal/test"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	f, err := xsdgen.ParseFile([]byte(test.ONVIFModel))
	require.NoError(t, err)

	assert.Equal(t, &xsdgen.Namespace{Name: "tt", URI: "http://www.onvif.org/ver10/schema"}, f.TargetNamespace)
	require.Len(t, f.Types, 3)

	assert.Equal(t, &xsdgen.Struct{
		Name: "NetworkHost",
		Fields: []xsdgen.StructField{
			{Name: "Type", Source: xsdgen.SourceElement},
			{Name: "xop:Include", Source: xsdgen.SourceElement},
			{Name: "token", Source: xsdgen.SourceAttribute},
			{Name: "Extension", Source: xsdgen.SourceChoice},
			{Name: "any", Source: xsdgen.SourceOther},
		},
	}, f.Types[0])
	assert.Equal(t, &xsdgen.TupleStruct{Name: "Duration"}, f.Types[1])
	assert.Equal(t, &xsdgen.Enum{
		Name:  "NetworkHostType",
		Cases: []xsdgen.EnumCase{{Name: "IPv4"}, {Name: "IPv6"}, {Name: "DNS"}},
	}, f.Types[2])
}

func TestParseFile_Namespaces(t *testing.T) {
	t.Parallel()

	f, err := xsdgen.ParseFile([]byte(test.DefaultNamespaceModel))
	require.NoError(t, err)
	assert.Equal(t, &xsdgen.Namespace{URI: "urn:x"}, f.TargetNamespace)

	f, err = xsdgen.ParseFile([]byte(test.NoNamespaceModel))
	require.NoError(t, err)
	assert.Nil(t, f.TargetNamespace)
}

func TestParseFile_SadBroken(t *testing.T) {
	t.Parallel()

	f, err := xsdgen.ParseFile([]byte(test.BrokenModel))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, xsdgen.ErrUnknownKind)
	assert.ErrorIs(t, err, xsdgen.ErrUnknownSource)
	assert.ErrorIs(t, err, xsdgen.ErrEmptyName)
}

func TestParseFile_SadErrorsInSourceOrder(t *testing.T) {
	t.Parallel()

	const want = `struct A: field id: unknown field source: "property"
types[1]: unknown declaration kind "union"
struct B: field ref: unknown field source: "bogus"
enum: empty name
struct C: field x: unknown field source: "nope"`

	for range 50 {
		_, err := xsdgen.ParseFile([]byte(test.MultiBrokenModel))
		require.Error(t, err)
		require.Equal(t, want, err.Error())
	}
}

func TestParseFile_SadNotYAML(t *testing.T) {
	t.Parallel()

	_, err := xsdgen.ParseFile([]byte("types: [oops"))
	assert.ErrorContains(t, err, "decode schema model")
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(test.NoNamespaceModel), 0o644))

	f, err := xsdgen.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Types, 1)
	assert.Equal(t, "Foo", f.Types[0].DeclName())

	_, err = xsdgen.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
