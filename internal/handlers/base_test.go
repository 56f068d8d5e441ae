package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamedevforum/internal/middleware"
	"gamedevforum/internal/models"
	"gamedevforum/internal/store"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestJSONStoreErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		wantBody string
	}{
		{
			name:     "not found",
			err:      &store.NotFoundError{Kind: "thread", ID: "abc123def4"},
			code:     http.StatusNotFound,
			wantBody: "thread with id abc123def4 does not exist",
		},
		{
			name:     "invalid input",
			err:      &store.InvalidInputError{Reason: "post content is empty"},
			code:     http.StatusBadRequest,
			wantBody: "Invalid request body",
		},
		{
			name:     "username taken",
			err:      &store.UsernameTakenError{Username: "a"},
			code:     http.StatusBadRequest,
			wantBody: "Username already exists",
		},
		{
			name:     "storage fault",
			err:      &store.StorageError{Op: "find post", Err: errors.New("boom")},
			code:     http.StatusInternalServerError,
			wantBody: "Internal server error",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext(t, "/forum/categories")
			JSONStoreError(c, tc.err)
			if w.Code != tc.code {
				t.Errorf("Expected status %d, got %d", tc.code, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to decode error body: %v", err)
			}
			if body["error"] != tc.wantBody {
				t.Errorf("Expected error %q, got %q", tc.wantBody, body["error"])
			}
		})
	}
}

func TestJSONStoreErrorWrapped(t *testing.T) {
	c, w := testContext(t, "/forum/categories")
	JSONStoreError(c, &store.NotFoundError{Kind: "category", ID: "zzzzzzzzzz"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestPaginationDefaults(t *testing.T) {
	c, _ := testContext(t, "/forum/categories")
	limit, skip, filter := pagination(c)
	if limit != defaultPageSize || skip != 0 || filter != "" {
		t.Errorf("Expected defaults, got limit=%d skip=%d filter=%q", limit, skip, filter)
	}
}

func TestPaginationPageAndLimit(t *testing.T) {
	c, _ := testContext(t, "/forum/categories?page=2&limit=5")
	limit, skip, _ := pagination(c)
	if limit != 5 || skip != 10 {
		t.Errorf("Expected limit=5 skip=10, got limit=%d skip=%d", limit, skip)
	}
}

func TestPaginationMalformedFallsBack(t *testing.T) {
	c, _ := testContext(t, "/forum/categories?page=-1&limit=abc")
	limit, skip, _ := pagination(c)
	if limit != defaultPageSize || skip != 0 {
		t.Errorf("Expected fallbacks, got limit=%d skip=%d", limit, skip)
	}
	// limit=0 would make page*limit meaningless; it falls back too.
	c, _ = testContext(t, "/forum/categories?limit=0")
	limit, _, _ = pagination(c)
	if limit != defaultPageSize {
		t.Errorf("Expected limit=0 to fall back to %d, got %d", defaultPageSize, limit)
	}
}

func TestPaginationFilterOverride(t *testing.T) {
	c, _ := testContext(t, "/forum/categories?id=abc123def4")
	_, _, filter := pagination(c)
	if filter != "abc123def4" {
		t.Errorf("Expected the id filter, got %q", filter)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := testContext(t, "/")
	if got := currentUserID(c); got != "Admin" {
		t.Errorf("Expected the anonymous placeholder, got %q", got)
	}

	c.Set(middleware.CheckUserKey, &models.User{UserID: "abc123def4", Username: "a"})
	if got := currentUserID(c); got != "abc123def4" {
		t.Errorf("Expected the logged-in user id, got %q", got)
	}
}
