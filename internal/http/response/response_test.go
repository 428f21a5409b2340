package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anbessa/iam-backend/internal/apperr"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestAppErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperr.ValidationField("name", "User name is required!"), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", apperr.NotFound(apperr.MsgUserNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", apperr.Forbidden(), http.StatusForbidden, "FORBIDDEN"},
		{"unauthorized", apperr.Unauthorized(apperr.MsgAuthentication), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"internal", apperr.Internal(errors.New("db down")), http.StatusInternalServerError, "INTERNAL"},
		{"plain error defaults to internal", errors.New("anything"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			AppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), c.err)
			if rr.Code != c.wantStatus {
				t.Fatalf("expected %d, got %d", c.wantStatus, rr.Code)
			}
			body := decodeError(t, rr)
			if body.Error.Code != c.wantCode {
				t.Fatalf("expected code %q, got %q", c.wantCode, body.Error.Code)
			}
		})
	}
}

func TestAppErrorValidationCarriesFieldDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	AppError(rr, httptest.NewRequest(http.MethodPost, "/", nil), apperr.Validation(
		apperr.FieldError{Field: "username", Message: "Username is required!"},
		apperr.FieldError{Field: "password", Message: "Password is required!"},
	))

	var body struct {
		Error struct {
			Details []apperr.FieldError `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Error.Details) != 2 || body.Error.Details[0].Field != "username" {
		t.Fatalf("unexpected details: %+v", body.Error.Details)
	}
}

func TestAppErrorInternalHidesCause(t *testing.T) {
	rr := httptest.NewRecorder()
	AppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), apperr.Internal(errors.New("pq: connection refused")))
	body := decodeError(t, rr)
	if body.Error.Message != apperr.MsgInternal {
		t.Fatalf("expected generic message, got %q", body.Error.Message)
	}
}

func TestJSONOmitsBodyForNilData(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, httptest.NewRequest(http.MethodDelete, "/", nil), http.StatusNoContent, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}
