// Package writer implements the incremental, append-only DATO encoder:
// a grow-only builder, key deduplication, the sort routines selected by
// ordered-keys mode, and writers for every value kind (spec.md §4.4).
package writer

import "github.com/dato-io/dato/format"

// KeyRef identifies a map key already written to the buffer.
//
// For a string key, Pos is the offset of the length prefix, DataPos the
// first data byte, and DataLen the byte count. For an integer key, Pos is
// the key value itself and DataPos/DataLen are unused.
type KeyRef struct {
	Pos     uint32
	DataPos uint32
	DataLen uint32
}

// ValueRef identifies a value already written to the buffer.
//
// For a referenced type (format.IsReferenced), Pos is the absolute offset
// of the value's body. For an inline type, Pos is the inline payload
// itself (spec.md §3.1, §3.3).
type ValueRef struct {
	Type format.Type
	Pos  uint32
}

// EntryRef pairs a key with a value for WriteStringMap/WriteIntMap.
type EntryRef struct {
	Key   KeyRef
	Value ValueRef
}
