package domain

import "unique"

// ID is the canonical identifier of a task. Identifiers are repeated across
// dependency lists, so the backing string is interned.
type ID struct {
	h unique.Handle[string]
}

// NewID creates an ID from a string.
func NewID(s string) ID {
	return ID{h: unique.Make(s)}
}

// NewIDs creates an ID slice from a string slice.
func NewIDs(s []string) []ID {
	res := make([]ID, len(s))
	for i, v := range s {
		res[i] = NewID(v)
	}
	return res
}

// String returns the underlying identifier.
func (id ID) String() string {
	return id.h.Value()
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id.h == unique.Handle[string]{}
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.h.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	id.h = unique.Make(string(text))
	return nil
}

// Resource names an exclusive executor. The zero value means the task needs
// no resource. Resource names repeat across tasks, so they are interned.
type Resource struct {
	h unique.Handle[string]
}

// NewResource creates a Resource from a string. An empty string yields
// the zero Resource.
func NewResource(s string) Resource {
	if s == "" {
		return Resource{}
	}
	return Resource{h: unique.Make(s)}
}

// String returns the resource name, or an empty string for the zero value.
func (r Resource) String() string {
	if r.IsZero() {
		return ""
	}
	return r.h.Value()
}

// IsZero reports whether no resource is set.
func (r Resource) IsZero() bool {
	return r.h == unique.Handle[string]{}
}

// MarshalText implements encoding.TextMarshaler.
func (r Resource) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Resource) UnmarshalText(text []byte) error {
	*r = NewResource(string(text))
	return nil
}
