// Package test holds schema model fixtures shared by tests.
package test

// ONVIFModel is a small schema model modelled on the ONVIF device schema.
const ONVIFModel = `target_namespace:
  name: tt
  uri: http://www.onvif.org/ver10/schema
types:
  - kind: struct
    name: NetworkHost
    fields:
      - name: Type
        source: element
      - name: xop:Include
        source: element
      - token,attribute
      - Extension,choice
      - name: any
        source: other
  - kind: tuple_struct
    name: Duration
  - kind: enum
    name: NetworkHostType
    cases: [IPv4, IPv6, DNS]
`

// DefaultNamespaceModel declares a target namespace with no prefix.
const DefaultNamespaceModel = `target_namespace:
  uri: urn:x
types:
  - kind: struct
    name: Bar
    fields:
      - Value
`

// NoNamespaceModel declares no target namespace.
const NoNamespaceModel = `types:
  - kind: struct
    name: Foo
    fields:
      - id,attribute
`

// BrokenModel has one mistake per declaration.
const BrokenModel = `types:
  - kind: union
    name: Mixed
  - kind: struct
    name: Foo
    fields:
      - name: id
        source: property
  - kind: enum
    name: ""
`

// MultiBrokenModel has several broken declarations, mixed with good ones.
const MultiBrokenModel = `types:
  - kind: struct
    name: A
    fields:
      - id,property
  - kind: union
    name: Mixed
  - kind: struct
    name: B
    fields:
      - ok
      - name: ref
        source: bogus
  - kind: enum
    name: ""
  - kind: struct
    name: C
    fields:
      - x,nope
`
