package identity

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingTracker struct {
	logins  int
	signUps int
}

func (t *recordingTracker) AssessmentStart(string, string)                  {}
func (t *recordingTracker) AssessmentComplete(string, string, float64, int) {}
func (t *recordingTracker) Login(string)                                    { t.logins++ }
func (t *recordingTracker) SignUp(string)                                   { t.signUps++ }

func newTestService(tr *recordingTracker) *Service {
	opts := Options{
		LoginLatency:    time.Nanosecond,
		RegisterLatency: time.Nanosecond,
	}
	if tr != nil {
		opts.Analytics = tr
	}
	return NewService(opts)
}

func TestLoginWithTestAccount(t *testing.T) {
	tr := &recordingTracker{}
	s := newTestService(tr)

	u, err := s.Login(context.Background(), "maria.santos@email.com", "student2024")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != "user-001" || u.FullName() != "Maria Santos" {
		t.Errorf("user = %+v", u)
	}
	if !s.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
	if id, ok := s.CurrentUserID(); !ok || id != "user-001" {
		t.Errorf("CurrentUserID = (%q, %v)", id, ok)
	}
	if tr.logins != 1 {
		t.Errorf("login events = %d, want 1", tr.logins)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestService(nil)

	tests := []struct{ email, password string }{
		{"maria.santos@email.com", "wrong"},
		{"nobody@email.com", "student2024"},
		{"", ""},
	}
	for _, tt := range tests {
		if _, err := s.Login(context.Background(), tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q) err = %v, want ErrInvalidCredentials", tt.email, err)
		}
	}
	if s.IsAuthenticated() {
		t.Error("failed login must not authenticate")
	}
}

func TestRegisterNewAccount(t *testing.T) {
	tr := &recordingTracker{}
	s := newTestService(tr)

	u, err := s.Register(context.Background(), Registration{
		Email:             "new.learner@email.com",
		Password:          "secret",
		FirstName:         "Liza",
		LastName:          "Mendoza",
		Age:               14,
		Grade:             8,
		PreferredLanguage: "tl",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" || u.Email != "new.learner@email.com" {
		t.Errorf("user = %+v", u)
	}
	if !s.IsAuthenticated() {
		t.Error("registration should sign the user in")
	}
	if tr.signUps != 1 {
		t.Errorf("sign_up events = %d, want 1", tr.signUps)
	}

	// The new account can log back in after logout.
	s.Logout()
	if s.IsAuthenticated() {
		t.Fatal("logout did not clear the session")
	}
	if _, err := s.Login(context.Background(), "new.learner@email.com", "secret"); err != nil {
		t.Errorf("login after register: %v", err)
	}
}

func TestRegisterRejectsExistingEmail(t *testing.T) {
	s := newTestService(nil)

	_, err := s.Register(context.Background(), Registration{
		Email:    "maria.santos@email.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	s := NewService(Options{LoginLatency: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Login(ctx, "maria.santos@email.com", "student2024"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestTestAccountsListing(t *testing.T) {
	s := newTestService(nil)

	accounts := s.TestAccounts()
	if len(accounts) != 10 {
		t.Fatalf("test accounts = %d, want 10", len(accounts))
	}
	if accounts[0].Email != "maria.santos@email.com" || accounts[0].Password != "student2024" {
		t.Errorf("first account = %+v", accounts[0])
	}

	// Runtime registrations are not test accounts.
	if _, err := s.Register(context.Background(), Registration{Email: "x@email.com", Password: "p"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := len(s.TestAccounts()); got != 10 {
		t.Errorf("test accounts after register = %d, want 10", got)
	}
}
