package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rmagpantay/aral/internal/analytics"
)

var (
	// ErrInvalidCredentials is returned when email/password don't match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering an existing email.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// Simulated network latencies, matching a slowish mobile connection.
const (
	defaultLoginLatency    = time.Second
	defaultRegisterLatency = 1500 * time.Millisecond
)

// Options configures a Service.
type Options struct {
	Analytics analytics.Tracker

	// LoginLatency and RegisterLatency override the simulated call
	// delays; tests set them to zero.
	LoginLatency    time.Duration
	RegisterLatency time.Duration

	Clock func() time.Time
}

// Service is the mock identity provider. It holds the user database in
// memory; accounts created at runtime live until the process exits.
type Service struct {
	analytics       analytics.Tracker
	loginLatency    time.Duration
	registerLatency time.Duration
	clock           func() time.Time

	mu       sync.Mutex
	accounts []*account
	current  *User
}

// NewService creates a Service seeded with the test accounts.
func NewService(opts Options) *Service {
	s := &Service{
		analytics:       opts.Analytics,
		loginLatency:    opts.LoginLatency,
		registerLatency: opts.RegisterLatency,
		clock:           opts.Clock,
		accounts:        seedAccounts(),
	}
	if s.analytics == nil {
		s.analytics = analytics.Noop{}
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.loginLatency == 0 {
		s.loginLatency = defaultLoginLatency
	}
	if s.registerLatency == 0 {
		s.registerLatency = defaultRegisterLatency
	}
	return s
}

// Login authenticates with email and password. The simulated latency
// respects context cancellation so the caller can bail out.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if err := simulateLatency(ctx, s.loginLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Email == email && a.password == password {
			a.LastLoginAt = s.clock()
			u := a.User
			s.current = &u
			s.analytics.Login("email")
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Register creates a new account and signs it in.
func (s *Service) Register(ctx context.Context, reg Registration) (*User, error) {
	if err := simulateLatency(ctx, s.registerLatency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Email == reg.Email {
			return nil, ErrEmailTaken
		}
	}

	now := s.clock()
	a := &account{
		User: User{
			ID:                fmt.Sprintf("user-%d", now.UnixMilli()),
			Email:             reg.Email,
			FirstName:         reg.FirstName,
			LastName:          reg.LastName,
			Age:               reg.Age,
			Grade:             reg.Grade,
			PreferredLanguage: reg.PreferredLanguage,
			CreatedAt:         now,
			LastLoginAt:       now,
		},
		password: reg.Password,
	}
	s.accounts = append(s.accounts, a)

	u := a.User
	s.current = &u
	s.analytics.SignUp("email")
	return &u, nil
}

// Logout clears the current session.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// CurrentUser returns the signed-in user, if any.
func (s *Service) CurrentUser() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Service) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// CurrentUserID returns the signed-in learner id for result attribution.
func (s *Service) CurrentUserID() (string, bool) {
	u, ok := s.CurrentUser()
	if !ok {
		return "", false
	}
	return u.ID, true
}

// TestAccounts lists the seeded credentials for the accounts command.
func (s *Service) TestAccounts() []TestAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []TestAccount
	for _, a := range s.accounts {
		if !a.testAccount {
			continue
		}
		out = append(out, TestAccount{
			Email:    a.Email,
			Password: a.password,
			Profile:  fmt.Sprintf("%s, Grade %d, %s", a.FullName(), a.Grade, strings.ToUpper(a.PreferredLanguage)),
		})
	}
	return out
}

// simulateLatency blocks for d or until ctx is done.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
