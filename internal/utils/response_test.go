package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"FITZEN_BACK-END/internal/apperrors"
	"FITZEN_BACK-END/internal/dto"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestWriteAppErrorStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperrors.NewValidationError("User ID is required"), http.StatusBadRequest, "User ID is required"},
		{apperrors.NewNotFoundError("Goal not found"), http.StatusNotFound, "Goal not found"},
		{apperrors.NewStorageError(errors.New("disk full"), "goals.csv"), http.StatusInternalServerError, "Storage operation failed"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteAppError(rec, tc.err)
		if rec.Code != tc.status {
			t.Errorf("%v: status %d, want %d", tc.err, rec.Code, tc.status)
		}
		if body := decodeError(t, rec); body.Error != tc.msg {
			t.Errorf("%v: error %q, want %q", tc.err, body.Error, tc.msg)
		}
	}
}

func TestDecodeJSONObjectKeepsNumbers(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"weight": 72.50, "name": "A"}`))
	rec := httptest.NewRecorder()
	body, err := DecodeJSONObject(rec, req)
	if err != nil {
		t.Fatalf("DecodeJSONObject: %v", err)
	}
	if n, ok := body["weight"].(json.Number); !ok || n.String() != "72.50" {
		t.Fatalf("expected json.Number 72.50, got %#v", body["weight"])
	}
}

func TestDecodeJSONRequestRejectsEmptyBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	var dst map[string]any
	if err := DecodeJSONRequest(rec, req, &dst); err == nil {
		t.Fatalf("expected error for empty body")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatalf("expected no user in empty context")
	}
	ctx := WithIdentity(context.Background(), "u1", "a@b.c", "")
	if id, ok := GetUserIDFromContext(ctx); !ok || id != "u1" {
		t.Fatalf("unexpected user id %q", id)
	}
	if GetEmailFromContext(ctx) != "a@b.c" || GetPhoneFromContext(ctx) != "" {
		t.Fatalf("unexpected identity fields")
	}
}
