package hashid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Compile-time interface checks for ID
var (
	_ fmt.Stringer               = ID(0)
	_ driver.Valuer              = ID(0)
	_ sql.Scanner                = (*ID)(nil)
	_ encoding.TextMarshaler     = ID(0)
	_ encoding.TextUnmarshaler   = (*ID)(nil)
	_ encoding.BinaryMarshaler   = ID(0)
	_ encoding.BinaryUnmarshaler = (*ID)(nil)
	_ json.Marshaler             = ID(0)
	_ json.Unmarshaler           = (*ID)(nil)
	_ gob.GobEncoder             = ID(0)
	_ gob.GobDecoder             = (*ID)(nil)
)

type Format string

const (
	FormatHash    Format = "hash"
	FormatHex     Format = "hex"
	FormatDecimal Format = "decimal"
)

// ID is a non-negative 64-bit identifier. Internally it is a plain integer;
// external representations (String, JSON, text) go through DefaultCodec, so
// a database key like 5 travels as "rD" rather than as its raw value.
type ID uint64

var Nil ID = 0

func (id ID) Uint64() uint64 {
	return uint64(id)
}

func (id ID) IsNil() bool {
	return id == Nil
}

// Bytes returns the ID as an 8-byte big-endian slice.
func (id ID) Bytes() []byte {
	b := make([]byte, 8)
	b[0] = byte(id >> 56)
	b[1] = byte(id >> 48)
	b[2] = byte(id >> 40)
	b[3] = byte(id >> 32)
	b[4] = byte(id >> 24)
	b[5] = byte(id >> 16)
	b[6] = byte(id >> 8)
	b[7] = byte(id)
	return b
}

func (id ID) String() string {
	return id.Format(DefaultFormat)
}

func (id ID) Format(f Format) string {
	switch f {
	case FormatDecimal:
		return strconv.FormatUint(uint64(id), 10)
	case FormatHex:
		return strconv.FormatUint(uint64(id), 16)
	default:
		return DefaultCodec.Encode(uint64(id))
	}
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(b []byte) error {
	// Handle null
	if string(b) == "null" {
		*id = Nil
		return nil
	}
	// Handle numeric value
	if len(b) > 0 && b[0] != '"' {
		n, err := strconv.ParseUint(string(b), 10, 64)
		if err != nil {
			return errors.New("hashid: invalid JSON value")
		}
		*id = ID(n)
		return nil
	}
	// Handle quoted string
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("hashid: invalid JSON string")
	}
	return id.UnmarshalText(b[1 : len(b)-1])
}

// Value implements driver.Valuer for database storage. IDs are stored as
// bigint, so values above the signed 64-bit range are rejected.
func (id ID) Value() (driver.Value, error) {
	if uint64(id) > math.MaxInt64 {
		return nil, fmt.Errorf("hashid: ID %d overflows bigint", uint64(id))
	}
	return int64(id), nil
}

// Scan implements sql.Scanner for database retrieval
func (id *ID) Scan(src interface{}) error {
	if src == nil {
		*id = Nil
		return nil
	}
	switch v := src.(type) {
	case ID:
		*id = v
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("hashid: cannot scan negative value %d", v)
		}
		*id = ID(v)
		return nil
	case []byte:
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("hashid: cannot scan %T", src)
	}
}

// Parse parses a string into an ID using DefaultFormat.
func Parse(s string) (ID, error) {
	switch DefaultFormat {
	case FormatDecimal:
		return ParseDecimal(s)
	case FormatHex:
		return ParseHex(s)
	default:
		return ParseHash(s)
	}
}

// ParseHash parses a DefaultCodec hash into an ID. The hash must decode to
// exactly one integer.
func ParseHash(s string) (ID, error) {
	if len(s) == 0 {
		return Nil, errors.New("hashid: empty string")
	}
	numbers := DefaultCodec.Decode(s)
	if len(numbers) != 1 {
		return Nil, fmt.Errorf("hashid: %q is not a valid hash", s)
	}
	return ID(numbers[0]), nil
}

// ParseHex parses a hex-encoded string into an ID.
func ParseHex(s string) (ID, error) {
	if len(s) == 0 {
		return Nil, errors.New("hashid: empty string")
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Nil, fmt.Errorf("hashid: invalid hex: %w", err)
	}
	return ID(n), nil
}

// ParseDecimal parses a decimal string into an ID.
func ParseDecimal(s string) (ID, error) {
	if len(s) == 0 {
		return Nil, errors.New("hashid: empty string")
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Nil, fmt.Errorf("hashid: invalid decimal: %w", err)
	}
	return ID(n), nil
}

// Parse parses a string into the ID receiver.
func (id *ID) Parse(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// FromString returns an ID parsed from the input string.
// Alias for Parse.
func FromString(s string) (ID, error) {
	return Parse(s)
}

// FromStringOrNil returns an ID parsed from the input string.
// Returns Nil on error.
func FromStringOrNil(s string) ID {
	id, err := Parse(s)
	if err != nil {
		return Nil
	}
	return id
}

// FromBytes returns an ID from an 8-byte big-endian slice.
func FromBytes(b []byte) (ID, error) {
	if len(b) != 8 {
		return Nil, fmt.Errorf("hashid: ID must be exactly 8 bytes, got %d", len(b))
	}
	return ID(uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])), nil
}

// FromBytesOrNil returns an ID from an 8-byte slice.
// Returns Nil on error.
func FromBytesOrNil(b []byte) ID {
	id, err := FromBytes(b)
	if err != nil {
		return Nil
	}
	return id
}

// FromUint64 returns an ID from a uint64.
func FromUint64(n uint64) ID {
	return ID(n)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// GobEncode implements gob.GobEncoder.
func (id ID) GobEncode() ([]byte, error) {
	return id.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (id *ID) GobDecode(data []byte) error {
	return id.UnmarshalBinary(data)
}

// Must panics if err is not nil
func Must(id ID, err error) ID {
	if err != nil {
		panic(err)
	}
	return id
}
