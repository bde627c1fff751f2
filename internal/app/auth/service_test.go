package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"tunecrate/internal/models"
)

type fakeUserSource map[string]*models.User

func (f fakeUserSource) FindByUsername(username string) (*models.User, bool) {
	u, ok := f[username]
	return u, ok
}

// fakeClock is a settable time source for simulating lockout expiry.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}
	source := fakeUserSource{
		"u": {Username: "u", PasswordHash: hash, Role: models.RoleListener},
	}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := New(source, zerolog.Nop()).WithClock(clock.Now)
	return svc, clock
}

func TestAuthenticate_Success(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Authenticate(context.Background(), "u", "pw")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error = %v", err)
	}
	if user.Username != "u" {
		t.Errorf("Authenticate() user = %q, want u", user.Username)
	}
}

func TestAuthenticate_FailureSignalsAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, wrongPassword := svc.Authenticate(ctx, "u", "nope")
	_, unknownUser := svc.Authenticate(ctx, "ghost", "pw")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Errorf("failure messages differ: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestAuthenticate_LockoutAfterThreeFailures(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxFailedAttempts; i++ {
		if _, err := svc.Authenticate(ctx, "u", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d error = %v, want ErrInvalidCredentials", i+1, err)
		}
	}

	// Correct password, but the account is now locked.
	if _, err := svc.Authenticate(ctx, "u", "pw"); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("locked account error = %v, want ErrAccountLocked", err)
	}

	// Counters stay untouched while locked.
	if got := svc.FailedAttempts("u"); got != MaxFailedAttempts {
		t.Errorf("FailedAttempts() while locked = %d, want %d", got, MaxFailedAttempts)
	}
}

func TestAuthenticate_UnknownUsernameCanLock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxFailedAttempts; i++ {
		svc.Authenticate(ctx, "ghost", "pw")
	}
	if _, err := svc.Authenticate(ctx, "ghost", "pw"); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("locked unknown username error = %v, want ErrAccountLocked", err)
	}
}

func TestAuthenticate_LockExpires(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxFailedAttempts; i++ {
		svc.Authenticate(ctx, "u", "wrong")
	}

	// One second short of the window the account is still locked.
	clock.Advance(LockoutDuration - time.Second)
	if _, err := svc.Authenticate(ctx, "u", "pw"); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("error before expiry = %v, want ErrAccountLocked", err)
	}

	clock.Advance(2 * time.Second)
	user, err := svc.Authenticate(ctx, "u", "pw")
	if err != nil {
		t.Fatalf("Authenticate() after expiry unexpected error = %v", err)
	}
	if user == nil {
		t.Fatal("Authenticate() after expiry returned nil user")
	}
	if got := svc.FailedAttempts("u"); got != 0 {
		t.Errorf("FailedAttempts() after successful login = %d, want 0", got)
	}
}

func TestAuthenticate_ExpiredLockStillRejectsBadPassword(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxFailedAttempts; i++ {
		svc.Authenticate(ctx, "u", "wrong")
	}
	clock.Advance(LockoutDuration + time.Minute)

	// Expiry clears the lock, not the credentials check; the failure also
	// re-locks immediately because the counter is already past the limit.
	if _, err := svc.Authenticate(ctx, "u", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error after expiry = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "u", "pw"); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("error after re-lock = %v, want ErrAccountLocked", err)
	}
}

func TestAuthenticate_SuccessResetsCounter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.Authenticate(ctx, "u", "wrong")
	svc.Authenticate(ctx, "u", "wrong")
	if _, err := svc.Authenticate(ctx, "u", "pw"); err != nil {
		t.Fatalf("Authenticate() unexpected error = %v", err)
	}
	if got := svc.FailedAttempts("u"); got != 0 {
		t.Fatalf("FailedAttempts() after success = %d, want 0", got)
	}

	// The slate is clean: two more failures still do not lock.
	svc.Authenticate(ctx, "u", "wrong")
	svc.Authenticate(ctx, "u", "wrong")
	if _, err := svc.Authenticate(ctx, "u", "pw"); err != nil {
		t.Errorf("Authenticate() after two new failures error = %v, want success", err)
	}
}

func TestAuthenticate_ContextCancelled(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Authenticate(ctx, "u", "pw"); !errors.Is(err, context.Canceled) {
		t.Errorf("Authenticate() with cancelled context error = %v, want context.Canceled", err)
	}
}
