package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

func TestUserHandler_GetUser(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubAccountService{
		getFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Alice", PasswordHash: "secret-hash"}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := withUser(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/getuser", nil), rec), "u1")
	if err := handler.GetUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"_id":"u1"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret-hash") || strings.Contains(rec.Body.String(), `"token"`) {
		t.Fatalf("response leaks credentials: %s", rec.Body.String())
	}
}

func TestUserHandler_RequiresSession(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubAccountService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/getuser", nil), httptest.NewRecorder())
	if err := handler.GetUser(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	e := newEcho()
	var got ports.ProfileUpdate
	handler := NewUserHandler(&stubAccountService{
		updateFn: func(ctx context.Context, userID string, u ports.ProfileUpdate) (*domain.User, error) {
			got = u
			return &domain.User{ID: userID, Name: "Alice", Phone: u.Phone}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := withUser(e.NewContext(jsonRequest(http.MethodPatch, "/api/users/updateuser", `{"phone":"+27 82 000"}`), rec), "u1")
	if err := handler.UpdateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Phone != "+27 82 000" || got.Name != "" {
		t.Fatalf("unexpected update: %+v", got)
	}

	long := strings.Repeat("b", 256)
	c = withUser(e.NewContext(jsonRequest(http.MethodPatch, "/api/users/updateuser", `{"bio":"`+long+`"}`), httptest.NewRecorder()), "u1")
	if err := handler.UpdateUser(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for long bio, got %v", err)
	}
}

func TestUserHandler_ChangePassword(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubAccountService{
		changeFn: func(ctx context.Context, userID, oldPassword, newPassword string) error {
			if oldPassword != "secret1" {
				return domain.ErrIncorrectPassword
			}
			return nil
		},
	})

	rec := httptest.NewRecorder()
	c := withUser(e.NewContext(jsonRequest(http.MethodPatch, "/api/users/changepassword",
		`{"oldPassword":"secret1","password":"newpass9"}`), rec), "u1")
	if err := handler.ChangePassword(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected success, got %v %d", err, rec.Code)
	}

	c = withUser(e.NewContext(jsonRequest(http.MethodPatch, "/api/users/changepassword",
		`{"oldPassword":"wrong","password":"newpass9"}`), httptest.NewRecorder()), "u1")
	if err := handler.ChangePassword(c); err != domain.ErrIncorrectPassword {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
}

func TestContactHandler_Send(t *testing.T) {
	e := newEcho()
	var gotUser, gotSubject string
	handler := NewContactHandler(&stubContactService{
		sendFn: func(ctx context.Context, userID, subject, message string) error {
			gotUser, gotSubject = userID, subject
			return nil
		},
	})

	rec := httptest.NewRecorder()
	c := withUser(e.NewContext(jsonRequest(http.MethodPost, "/api/contactus", `{"subject":"Help","message":"hi"}`), rec), "u1")
	if err := handler.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotUser != "u1" || gotSubject != "Help" || rec.Code != http.StatusOK {
		t.Fatalf("unexpected call: %q %q %d", gotUser, gotSubject, rec.Code)
	}
}
