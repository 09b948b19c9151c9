package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const tempPrefix = "temp-"

// ID identifies an item. A temporary ID is minted locally for an optimistic
// item; a permanent ID is assigned by the analysis service. The two never
// compare equal even when their numeric parts match.
type ID struct {
	value     int64
	temporary bool
}

// PermanentID wraps a service-assigned identifier.
func PermanentID(v int64) ID { return ID{value: v} }

// TemporaryID wraps a locally generated sequence number.
func TemporaryID(seq uint64) ID { return ID{value: int64(seq), temporary: true} }

func (id ID) IsTemporary() bool { return id.temporary }

// IsZero reports an id the service never assigned (a missing "id" field).
func (id ID) IsZero() bool { return id == ID{} }

// Int64 returns the numeric part of the identifier.
func (id ID) Int64() int64 { return id.value }

func (id ID) String() string {
	if id.temporary {
		return tempPrefix + strconv.FormatInt(id.value, 10)
	}
	return strconv.FormatInt(id.value, 10)
}

// Display is the short form shown next to an item; unresolved items have no
// meaningful id to show yet.
func (id ID) Display() string {
	if id.temporary {
		return "…"
	}
	return id.String()
}

// ParseID parses a service-assigned id. Temporary ids are only ever minted
// by the item store, so the "temp-N" form is rejected.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, tempPrefix) {
		return ID{}, fmt.Errorf("parse id %q: temporary ids are local only", s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("parse id %q: %w", s, err)
	}
	return PermanentID(n), nil
}

// MarshalJSON writes permanent ids as numbers (the service's wire form) and
// temporary ids as strings. The string form does not decode back.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.temporary {
		return json.Marshal(id.String())
	}
	return []byte(strconv.FormatInt(id.value, 10)), nil
}

// UnmarshalJSON reads the service's wire form. Decoded ids are always
// permanent; a numeric string is tolerated, anything else is an error.
func (id *ID) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*id = PermanentID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("id: expected number, got %s", string(b))
	}
	parsed, err := ParseID(s)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = parsed
	return nil
}

// MarshalYAML keeps exported YAML consistent with the JSON form.
func (id ID) MarshalYAML() (any, error) {
	if id.temporary {
		return id.String(), nil
	}
	return id.value, nil
}
