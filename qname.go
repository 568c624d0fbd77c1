package xsdgen

import "strings"

// QNameSeparator separates a namespace prefix from a local name.
const QNameSeparator = ":"

// QName is the parsed form of a possibly prefixed name. It is either
// Unqualified or Qualified.
type QName interface {
	LocalName() string
	qname()
}

// Unqualified is a name without a prefix.
type Unqualified struct {
	Local string
}

func (u Unqualified) LocalName() string { return u.Local }
func (Unqualified) qname()              {}

// Qualified is a name with an explicit prefix.
type Qualified struct {
	Prefix string
	Local  string
}

func (q Qualified) LocalName() string { return q.Local }
func (Qualified) qname()              {}

// ParseQName splits name at the first separator. Anything after that belongs
// to the local name verbatim, so "a:b:c" has prefix "a" and local name "b:c".
// No validation is performed.
func ParseQName(name string) QName {
	prefix, local, found := strings.Cut(name, QNameSeparator)
	if !found {
		return Unqualified{Local: name}
	}
	return Qualified{Prefix: prefix, Local: local}
}

// ResolvedName is a field name after namespace resolution.
type ResolvedName struct {
	// Prefix is only meaningful when HasPrefix is true. An explicit empty
	// prefix, as in ":foo", is kept.
	Prefix    string
	HasPrefix bool
	Local     string
}

// ResolveFieldName resolves the prefix and local name for a field.
//
// An explicit prefix always wins. Without one, elements fall back to the name
// of the target namespace, if there is a target namespace and it has a name.
// Attributes are unqualified by default and never fall back. Other sources
// resolve the same way attributes do.
func ResolveFieldName(name string, source FieldSource, target *Namespace) ResolvedName {
	switch qn := ParseQName(name).(type) {
	case Qualified:
		return ResolvedName{Prefix: qn.Prefix, HasPrefix: true, Local: qn.Local}
	case Unqualified:
		if source == SourceElement && target != nil && target.HasName() {
			return ResolvedName{Prefix: target.Name, HasPrefix: true, Local: qn.Local}
		}
		return ResolvedName{Local: qn.Local}
	}

	// unreachable: QName is sealed
	return ResolvedName{Local: name}
}
