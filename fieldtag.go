package xsdgen

import "strings"

// FieldTag is the compact form of a field in a schema model file:
// "name,source", for example "tt:Include,attribute". The source part is
// optional and defaults to element.
type FieldTag string

func (tag FieldTag) Parts() []string {
	return strings.Split(string(tag), ",")
}

func (tag FieldTag) Name() string {
	parts := tag.Parts()
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

func (tag FieldTag) HasSource() bool {
	return len(tag.Parts()) > 1 && tag.SourceName() != ""
}

func (tag FieldTag) SourceName() string {
	parts := tag.Parts()
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// StructField converts the tag into a field.
func (tag FieldTag) StructField() (StructField, error) {
	sf := StructField{Name: tag.Name(), Source: SourceElement}
	if tag.HasSource() {
		src, err := ParseFieldSource(tag.SourceName())
		if err != nil {
			return sf, err
		}
		sf.Source = src
	}
	return sf, nil
}
