// Package objectid generates and validates ObjectIDs, the 12-byte identifiers
// used as primary keys for entities persisted through gorm.
//
// # Layout
//
// An ObjectID is 12 bytes, rendered as 24 lowercase hexadecimal characters:
//
//	[4 bytes seconds since epoch][5 bytes process fingerprint][3 bytes counter]
//
// The timestamp is big-endian, so the hex form sorts chronologically at
// second granularity. The fingerprint is chosen randomly once per process.
// The counter is seeded randomly at process start, incremented atomically on
// every call, and wraps modulo 2^24 without error.
//
// # Usage
//
//	id := objectid.NewString() // "65f1c2a09b3e4d5f6a000001"
//	objectid.IsValid(id)       // true
//
//	parsed, err := objectid.Parse(id)
//	if err != nil {
//	    return err
//	}
//	created := parsed.Timestamp()
//
// # Database Integration
//
// ID implements sql.Scanner and driver.Valuer, so it can be used directly as
// a gorm column type:
//
//	type Widget struct {
//	    entity.Model
//	    OwnerID objectid.ID `gorm:"type:char(24)"`
//	}
//
// Uniqueness is probabilistic. Nothing in this package checks storage for
// duplicates; a collision surfaces as a unique constraint violation on insert.
package objectid
