package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Mutable fields per entity. Everything else in an update payload is
// silently dropped.
var (
	categoryFields = []string{"title"}
	threadFields   = []string{"title"}
	postFields     = []string{"content", "last_edit_date"}
	userFields     = []string{"username", "password_hash", "email"}
)

// filterUpdate reduces an update payload to its allow-listed fields.
// An empty payload, a recognized field with an empty value, or a payload
// where nothing survives the allow-list all fail with InvalidInput.
func filterUpdate(fields map[string]any, allowed []string) (bson.M, error) {
	if len(fields) == 0 {
		return nil, &InvalidInputError{Reason: "empty update payload"}
	}
	set := bson.M{}
	for _, name := range allowed {
		val, ok := fields[name]
		if !ok {
			continue
		}
		if isEmptyValue(val) {
			return nil, &InvalidInputError{Reason: "field " + name + " is empty"}
		}
		set[name] = val
	}
	if len(set) == 0 {
		return nil, &InvalidInputError{Reason: "no recognized fields in update payload"}
	}
	return set, nil
}

func isEmptyValue(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case time.Time:
		return v.IsZero()
	}
	return false
}
