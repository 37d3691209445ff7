package model

// MaxListNameLength is the upper bound of a list name, in runes, after
// trimming surrounding whitespace.
const MaxListNameLength = 200

// A List represents a named collection of items.
//
// Its ID is supplied by the client at creation time (or derived server-side on
// lazy materialization) and is immutable once set. Deleting a list cascades to
// all of its items.
type List struct {
	Base `msgpack:",inline" storm:"inline"`

	Name string `json:"name" msgpack:"name"`
}
