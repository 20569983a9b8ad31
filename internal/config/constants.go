// Package config carries the semantic core's ambient constants, in the
// same spirit as the teacher's internal/config/constants.go — a small
// no-dependency home for "things every package might need" — adapted from
// funxy's language built-ins (trait/function/type name constants) to
// lain's own fixed vocabulary.
package config

// Version is the current lainc version, set at build time by -ldflags,
// mirroring the teacher's Version var.
var Version = "0.1.0"

const SourceFileExt = ".lain"

// Built-in function names. The resolver (internal/sema) does not consult
// this list: a call to one of these names with no declaration in the module
// is reported as an undefined identifier like any other unknown name.
const (
	PrintFuncName = "print"
	PanicFuncName = "panic"
	LenFuncName   = "len"
)

// Built-in type names usable in a type position without a user declaration.
const (
	IntTypeName  = "int"
	U8TypeName   = "u8"
	BoolTypeName = "bool"
)
