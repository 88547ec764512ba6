package objectid

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IsValid reports whether candidate is exactly 24 hexadecimal characters.
// Upper and lower case are both accepted. It does not decode the value.
func IsValid(candidate string) bool {
	if len(candidate) != HexLen {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if !isHex(candidate[i]) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// ErrRule is the validation error reported by Rule.
var ErrRule = validation.NewError("validation_is_objectid", "must be a valid ObjectID")

// Rule validates that a string value is a well-formed ObjectID. Empty values
// pass; combine with validation.Required to reject them.
//
//	validation.Field(&req.ParentID, validation.Required, objectid.Rule)
var Rule = validation.NewStringRuleWithError(IsValid, ErrRule)
