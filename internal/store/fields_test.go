package store

import (
	"errors"
	"testing"
	"time"
)

func TestFilterUpdateEmptyPayload(t *testing.T) {
	var invalid *InvalidInputError
	if _, err := filterUpdate(nil, postFields); !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidInputError for nil payload, got %v", err)
	}
	if _, err := filterUpdate(map[string]any{}, postFields); !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidInputError for empty payload, got %v", err)
	}
}

func TestFilterUpdateEmptyValue(t *testing.T) {
	var invalid *InvalidInputError
	cases := []map[string]any{
		{"content": ""},
		{"content": nil},
		{"last_edit_date": time.Time{}},
	}
	for _, fields := range cases {
		if _, err := filterUpdate(fields, postFields); !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidInputError for %v, got %v", fields, err)
		}
	}
}

func TestFilterUpdateDropsUnknownFields(t *testing.T) {
	set, err := filterUpdate(map[string]any{
		"content":   "hello",
		"thread_id": "zzzzzzzzzz", // parent refs are not mutable
		"post_id":   "aaaaaaaaaa",
	}, postFields)
	if err != nil {
		t.Fatalf("filterUpdate failed: %v", err)
	}
	if len(set) != 1 || set["content"] != "hello" {
		t.Errorf("Expected only content to survive, got %v", set)
	}
}

func TestFilterUpdateNothingSurvives(t *testing.T) {
	var invalid *InvalidInputError
	_, err := filterUpdate(map[string]any{"author_id": "someone"}, postFields)
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidInputError when no field survives, got %v", err)
	}
}

func TestFilterUpdateAllowLists(t *testing.T) {
	if _, err := filterUpdate(map[string]any{"title": "x"}, categoryFields); err != nil {
		t.Errorf("category title update rejected: %v", err)
	}
	if _, err := filterUpdate(map[string]any{"title": "x"}, threadFields); err != nil {
		t.Errorf("thread title update rejected: %v", err)
	}
	set, err := filterUpdate(map[string]any{
		"username":      "a",
		"password_hash": "h",
		"email":         "e@x.com",
	}, userFields)
	if err != nil {
		t.Fatalf("user update rejected: %v", err)
	}
	if len(set) != 3 {
		t.Errorf("Expected all three user fields to survive, got %v", set)
	}
}
