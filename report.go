package xsdgen

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"
)

const (
	// FormatText writes the directive fragments with a comment header each.
	FormatText = "text"
	// FormatYAML writes the annotations as a YAML list.
	FormatYAML = "yaml"
)

// CheckFormat returns ErrUnknownFormat unless format names a report format. An
// empty format means FormatText.
func CheckFormat(format string) error {
	switch format {
	case "", FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// MarshalYAML always writes the text as a double-quoted scalar. Block scalars
// cannot carry the leading indentation of field and case directives intact.
func (a Annotation) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key, value string, style yaml.Style) {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: style},
		)
	}

	add("kind", string(a.Kind), 0)
	if a.Owner != "" {
		add("owner", a.Owner, 0)
	}
	add("name", a.Name, 0)
	add("text", a.Text, yaml.DoubleQuotedStyle)
	return n, nil
}

// WriteReport writes anns to w in the named format.
func WriteReport(w io.Writer, format string, anns []Annotation) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	switch format {
	case "", FormatText:
		return WriteText(w, anns)
	case FormatYAML:
		return WriteYAML(w, anns)
	}
	return nil
}

// WriteText writes each non-empty annotation preceded by a comment line naming
// the construct.
func WriteText(w io.Writer, anns []Annotation) error {
	for _, a := range anns {
		if a.Text == "" {
			continue
		}

		name := a.Name
		if a.Owner != "" {
			name = a.Owner + "." + a.Name
		}

		if _, err := fmt.Fprintf(w, "// %s %s\n%s", a.Kind, name, a.Text); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes anns as a YAML sequence.
func WriteYAML(w io.Writer, anns []Annotation) error {
	if anns == nil {
		anns = []Annotation{}
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(anns); err != nil {
		return err
	}
	return enc.Close()
}

// FileReport holds the annotations generated for one schema model file.
type FileReport struct {
	Path        string       `yaml:"path"`
	Annotations []Annotation `yaml:"annotations"`
}

// WriteFileReports writes the reports for several files to w in the named
// format. Text output starts each file with a "// file" comment line; YAML
// output is a single sequence of reports.
func WriteFileReports(w io.Writer, format string, reports []FileReport) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	switch format {
	case "", FormatText:
		for _, r := range reports {
			if _, err := fmt.Fprintf(w, "// file %s\n", r.Path); err != nil {
				return err
			}
			if err := WriteText(w, r.Annotations); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		out := make([]FileReport, len(reports))
		for i, r := range reports {
			if r.Annotations == nil {
				r.Annotations = []Annotation{}
			}
			out[i] = r
		}

		enc := yaml.NewEncoder(w)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
	return nil
}
