package model

// MaxItemTextLength is the upper bound of an item text, in runes, after
// trimming surrounding whitespace.
const MaxItemTextLength = 500

// An Item represents a single todo entry belonging to exactly one list.
// Its ID is always server-assigned. Items cannot move between lists.
type Item struct {
	Base `msgpack:",inline" storm:"inline"`

	ListID string `json:"list_id" msgpack:"list_id" storm:"index"`
	Text   string `json:"text"    msgpack:"text"`
}
