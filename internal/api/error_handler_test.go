package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opencourses/course-api/internal/core/domain"
)

func render(t *testing.T, err error, logErrors bool, sink *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/some/path", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if sink == nil {
		sink = &bytes.Buffer{}
	}
	handler := NewHTTPErrorHandler(zerolog.New(sink), logErrors)
	handler(err, c)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) (string, map[string]any) {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	msg, _ := resp["message"].(string)
	return msg, resp
}

func TestErrorHandler_RouteNotFound(t *testing.T) {
	rec := render(t, echo.ErrNotFound, false, nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	msg, resp := decodeErrorBody(t, rec)
	if msg != "Route Not Found" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if obj, ok := resp["error"].(map[string]any); !ok || len(obj) != 0 {
		t.Fatalf("expected empty error object, got %v", resp["error"])
	}
}

func TestErrorHandler_DomainSentinels(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"course not found", domain.ErrCourseNotFound, http.StatusNotFound, "Course Not Found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User Not Found"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Access Denied"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := render(t, tc.err, false, nil)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if msg, _ := decodeErrorBody(t, rec); msg != tc.message {
				t.Fatalf("unexpected message: %q", msg)
			}
		})
	}
}

func TestErrorHandler_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrCourseNotFound)

	rec := render(t, wrapped, false, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped sentinel, got %d", rec.Code)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	err := domain.NewValidationError(
		`Please provide a value for "title"`,
		`Please provide a value for "description"`,
	)

	rec := render(t, err, false, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp validationBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 messages, got %v", resp.Errors)
	}
}

func TestErrorHandler_OwnershipError(t *testing.T) {
	err := &domain.OwnershipError{Message: "You cannot update course that you dont owned"}

	rec := render(t, err, false, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp ownershipBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error != "You cannot update course that you dont owned" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec := render(t, errors.New("mongo: socket closed"), false, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	msg, _ := decodeErrorBody(t, rec)
	if msg != "Internal Server Error" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if strings.Contains(rec.Body.String(), "socket closed") {
		t.Fatalf("internal cause leaked to the client: %s", rec.Body.String())
	}
}

func TestErrorHandler_LoggingGate(t *testing.T) {
	cause := errors.New("mongo: socket closed")

	silent := &bytes.Buffer{}
	render(t, cause, false, silent)
	if silent.Len() != 0 {
		t.Fatalf("nothing should be logged when the gate is off: %s", silent.String())
	}

	logged := &bytes.Buffer{}
	render(t, cause, true, logged)
	if !strings.Contains(logged.String(), "socket closed") {
		t.Fatalf("expected cause in log output, got: %s", logged.String())
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("priming response failed: %v", err)
	}

	handler := NewHTTPErrorHandler(zerolog.Nop(), false)
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("committed response body must stay empty, got %q", rec.Body.String())
	}
}
