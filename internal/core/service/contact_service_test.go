package service

import (
	"context"
	"errors"
	"testing"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

func TestContactService_Send(t *testing.T) {
	repo := newStubUserRepo()
	user, _ := repo.Create(context.Background(), &domain.User{Name: "Alice", Email: "alice@x.com"})
	mailer := &stubMailer{}
	svc := NewContactService(repo, mailer, "noreply@example.com", "support@example.com", nopLogger)

	if err := svc.Send(context.Background(), user.ID, "Help", "<b>stock</b> is wrong"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	e := mailer.last()
	if e.To != "support@example.com" || e.From != "noreply@example.com" || e.ReplyTo != "alice@x.com" {
		t.Fatalf("unexpected envelope: %+v", e)
	}
	if e.HTMLBody != "<p>&lt;b&gt;stock&lt;/b&gt; is wrong</p>" {
		t.Fatalf("message not escaped: %q", e.HTMLBody)
	}
}

func TestContactService_Send_Errors(t *testing.T) {
	repo := newStubUserRepo()
	user, _ := repo.Create(context.Background(), &domain.User{Name: "Alice", Email: "alice@x.com"})
	mailer := &stubMailer{}
	svc := NewContactService(repo, mailer, "noreply@example.com", "support@example.com", nopLogger)

	if err := svc.Send(context.Background(), user.ID, "", "msg"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	mailer.err = errBoom
	if err := svc.Send(context.Background(), user.ID, "Help", "msg"); !errors.Is(err, domain.ErrEmailDelivery) {
		t.Fatalf("expected ErrEmailDelivery, got %v", err)
	}
}
