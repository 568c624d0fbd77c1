package xsdgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/xsdgen-go"
	"github.com/zostay/xsdgen-go/internal/test"
)

func TestAnnotate_NoNamespace(t *testing.T) {
	t.Parallel()

	f, err := xsdgen.ParseFile([]byte(test.NoNamespaceModel))
	require.NoError(t, err)

	anns := xsdgen.Annotate(xsdgen.NewYaserdeGenerator(f), f)
	assert.Equal(t, []xsdgen.Annotation{
		{
			Kind: xsdgen.KindStruct,
			Name: "Foo",
			Text: structDerive + "#[yaserde()]\n",
		},
		{
			Kind:  xsdgen.KindField,
			Owner: "Foo",
			Name:  "id",
			Text:  "    #[yaserde(attribute, rename = \"id\")]\n",
		},
	}, anns)
}

func TestAnnotate_DefaultNamespace(t *testing.T) {
	t.Parallel()

	f, err := xsdgen.ParseFile([]byte(test.DefaultNamespaceModel))
	require.NoError(t, err)

	anns := xsdgen.Annotate(xsdgen.NewYaserdeGenerator(f), f)
	require.Len(t, anns, 2)
	assert.Equal(t, structDerive+"#[yaserde(namespace = \"urn:x\")]\n", anns[0].Text)
	assert.Equal(t, "    #[yaserde(rename = \"Value\")]\n", anns[1].Text)
}

func TestAnnotate_SourceOrder(t *testing.T) {
	t.Parallel()

	f, err := xsdgen.ParseFile([]byte(test.ONVIFModel))
	require.NoError(t, err)

	anns := xsdgen.Annotate(xsdgen.NewYaserdeGenerator(f), f)

	type key struct {
		Kind  xsdgen.ConstructKind
		Owner string
		Name  string
	}
	keys := make([]key, 0, len(anns))
	for _, a := range anns {
		keys = append(keys, key{a.Kind, a.Owner, a.Name})
	}

	assert.Equal(t, []key{
		{xsdgen.KindStruct, "", "NetworkHost"},
		{xsdgen.KindField, "NetworkHost", "Type"},
		{xsdgen.KindField, "NetworkHost", "xop:Include"},
		{xsdgen.KindField, "NetworkHost", "token"},
		{xsdgen.KindField, "NetworkHost", "Extension"},
		{xsdgen.KindField, "NetworkHost", "any"},
		{xsdgen.KindTupleStruct, "", "Duration"},
		{xsdgen.KindEnum, "", "NetworkHostType"},
		{xsdgen.KindEnumCase, "NetworkHostType", "IPv4"},
		{xsdgen.KindEnumCase, "NetworkHostType", "IPv6"},
		{xsdgen.KindEnumCase, "NetworkHostType", "DNS"},
	}, keys)

	assert.Equal(t, "    #[yaserde(prefix = \"tt\", rename = \"Type\")]\n", anns[1].Text)
	assert.Equal(t, "    #[yaserde(prefix = \"xop\", rename = \"Include\")]\n", anns[2].Text)
	assert.Equal(t, "    #[yaserde(attribute, rename = \"token\")]\n", anns[3].Text)
	assert.Equal(t, "    #[yaserde(flatten)]\n", anns[4].Text)
	assert.Empty(t, anns[5].Text)
}

func TestAnnotate_ConcurrentGenerators(t *testing.T) {
	t.Parallel()

	models := []string{test.ONVIFModel, test.DefaultNamespaceModel, test.NoNamespaceModel}
	want := make([][]xsdgen.Annotation, len(models))
	files := make([]*xsdgen.File, len(models))
	for i, m := range models {
		f, err := xsdgen.ParseFile([]byte(m))
		require.NoError(t, err)
		files[i] = f
		want[i] = xsdgen.Annotate(xsdgen.NewYaserdeGenerator(f), f)
	}

	for i := range files {
		t.Run(files[i].Types[0].DeclName(), func(t *testing.T) {
			t.Parallel()

			for range 50 {
				assert.Equal(t, want[i], xsdgen.Annotate(xsdgen.NewYaserdeGenerator(files[i]), files[i]))
			}
		})
	}
}
