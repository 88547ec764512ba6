package objectid

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Size is the length of an ObjectID in bytes.
const Size = 12

// HexLen is the length of the canonical hex form of an ObjectID.
const HexLen = Size * 2

// ErrInvalidID is returned when a string is not a well-formed ObjectID.
var ErrInvalidID = errors.New("invalid ObjectID")

// ID is a 12-byte ObjectID.
type ID [Size]byte

// Nil is the zero ObjectID.
var Nil ID

// Parse parses a 24-character hex string (either case) into an ID.
func Parse(s string) (ID, error) {
	if !IsValid(s) {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	var id ID
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return id, nil
}

// MustParse parses an ID from string, panicking on error.
// This is useful for test fixtures and constants where the ID is known valid.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("objectid: %v", err))
	}
	return id
}

// FromTime returns the smallest ID for the second containing t. Fingerprint
// and counter are zero, which makes the result usable as a lower bound in
// range queries over ObjectID keys. Times before 1970 clamp to the
// first second and times after 2106-02-07T06:28:15Z to the last one.
func FromTime(t time.Time) ID {
	var id ID
	unix := t.Unix()
	switch {
	case unix < 0:
		unix = 0
	case unix > math.MaxUint32:
		unix = math.MaxUint32
	}
	binary.BigEndian.PutUint32(id[0:4], uint32(unix))
	return id
}

// Hex returns the canonical 24-character lowercase hex form.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String returns the canonical hex form.
func (id ID) String() string {
	return id.Hex()
}

// IsZero returns true if this is the zero ID.
func (id ID) IsZero() bool {
	return id == Nil
}

// Equal returns true if two IDs are equal.
func (id ID) Equal(other ID) bool {
	return id == other
}

// Compare returns -1, 0 or 1. Byte order matches the order of the hex form.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Timestamp returns the creation second encoded in the ID.
func (id ID) Timestamp() time.Time {
	return time.Unix(int64(binary.BigEndian.Uint32(id[0:4])), 0).UTC()
}

// Fingerprint returns the process fingerprint encoded in the ID.
func (id ID) Fingerprint() [5]byte {
	var f [5]byte
	copy(f[:], id[4:9])
	return f
}

// Counter returns the 24-bit counter value encoded in the ID.
func (id ID) Counter() uint32 {
	return uint32(id[9])<<16 | uint32(id[10])<<8 | uint32(id[11])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
// The zero ID is serialized as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(id.Hex())
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = Nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("ObjectID must be a string: %w", err)
	}
	if s == "" {
		*id = Nil
		return nil
	}
	return id.UnmarshalText([]byte(s))
}

// Scan implements sql.Scanner for database reading.
// Supports string and []byte input from database.
func (id *ID) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.scanString(v)
	case []byte:
		return id.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ObjectID", value)
	}
}

func (id *ID) scanString(s string) error {
	if s == "" {
		*id = Nil
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("cannot scan into ObjectID: %w", err)
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer for database writing.
// Returns nil for the zero ID, the hex string otherwise.
func (id ID) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.Hex(), nil
}
