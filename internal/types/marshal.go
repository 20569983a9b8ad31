package types

import "encoding/json"

// wireType is the JSON-visible shape of a Type. It exists only so the
// module signature cache (internal/module) can persist and reload Types
// across compiler invocations without this package exposing its internal
// ownership/hasOwn fields on Type itself.
type wireType struct {
	Tag           Tag
	Name          string
	Elem          *Type
	Length        int64
	SentinelBytes []byte
	SliceLength   int64
	IsString      bool
	Ownership     Ownership
	HasOwnership  bool
}

// MarshalJSON implements json.Marshaler so cached module signatures
// round-trip through the persistent cache exactly, including the
// wrapper-overridden ownership that Ownership() reads.
func (t *Type) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(wireType{
		Tag:           t.Tag,
		Name:          t.Name,
		Elem:          t.Elem,
		Length:        t.Length,
		SentinelBytes: t.SentinelBytes,
		SliceLength:   t.SliceLength,
		IsString:      t.IsString,
		Ownership:     t.ownership,
		HasOwnership:  t.hasOwn,
	})
}

// UnmarshalJSON implements json.Unmarshaler, the counterpart to MarshalJSON.
func (t *Type) UnmarshalJSON(data []byte) error {
	var w wireType
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.Tag = w.Tag
	t.Name = w.Name
	t.Elem = w.Elem
	t.Length = w.Length
	t.SentinelBytes = w.SentinelBytes
	t.SliceLength = w.SliceLength
	t.IsString = w.IsString
	t.ownership = w.Ownership
	t.hasOwn = w.HasOwnership
	return nil
}
