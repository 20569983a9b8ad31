package types

import "github.com/funvibe/funbit/pkg/funbit"

// StringLiteralType builds the fixed-length slice-of-u8 type for a string
// literal, per spec.md §4.3: "String literal → fixed-length slice of u8
// with length = byte count." The byte count is computed through funbit's
// bitstring builder rather than a bare len(s): lain string literals share
// their sentinel-byte representation with the slice/bitstring domain the
// source language's `Bits`/`Bytes` values use (SPEC_FULL.md §2), and funbit
// is the library already in this codebase's dependency graph for exactly
// that representation.
func StringLiteralType(value string) *Type {
	bs := funbit.NewBitStringFromBytes([]byte(value))
	length := int64(len(bs.ToBytes()))
	sentinel := append([]byte(nil), bs.ToBytes()...)
	return NewSlice(U8, sentinel, length, true)
}

// CharLiteralType implements spec.md §4.3: "Char literal → u8."
func CharLiteralType() *Type {
	return U8
}
