// Copyright 2020 Aleksandr Demakin. All rights reserved.

package widefix

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

// BinarySize is the length of the binary form of a Fixed.
const BinarySize = Size * 4

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// UnmarshalJSON accepts all the forms regardless of it.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as decimal strings, like `"1.5"`.
	JSONModeString = iota
	// JSONModeFloat marshals values as floats, like `1.5`. Precision may be lost.
	JSONModeFloat
	// JSONModeWords marshals values as arrays of raw words, least significant first.
	JSONModeWords
)

// MarshalJSON implements json.Marshaler.
func (f Fixed) MarshalJSON() ([]byte, error) {
	switch JSONMode {
	case JSONModeFloat:
		return strconv.AppendFloat(nil, f.Float64(), 'g', -1, 64), nil
	case JSONModeWords:
		return json.Marshal(f.data)
	default:
		return strconv.AppendQuote(nil, f.String()), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Fixed) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var words []uint32
		if err := json.Unmarshal(data, &words); err != nil {
			return err
		}
		if len(words) != Size {
			return fmt.Errorf("widefix: got %d words, want %d", len(words), Size)
		}
		copy(f.data[:], words)
		return nil
	}
	v, err := FromString(string(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Fixed) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fixed) UnmarshalText(data []byte) error {
	v, err := FromString(string(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// AppendBinary appends the words of f in native byte order,
// least significant word first.
func (f Fixed) AppendBinary(b []byte) ([]byte, error) {
	for _, w := range f.data {
		b = binary.NativeEndian.AppendUint32(b, w)
	}
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The layout matches a uint[Size] array in GPU memory.
func (f Fixed) MarshalBinary() ([]byte, error) {
	return f.AppendBinary(make([]byte, 0, BinarySize))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Fixed) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fmt.Errorf("widefix: invalid binary length %d, want %d", len(data), BinarySize)
	}
	for i := range f.data {
		f.data[i] = binary.NativeEndian.Uint32(data[i*4:])
	}
	return nil
}
