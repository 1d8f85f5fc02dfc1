package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/techbridge/events-api/internal/core/domain"
)

func newAuthService(admins *stubAdminRepo, users *stubUserRepo) *AuthService {
	return NewAuthService(admins, users, "test-secret", 30*time.Minute, zerolog.Nop())
}

func seedAdmin(t *testing.T, repo *stubAdminRepo, username, password string) *domain.Admin {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	admin, err := repo.Insert(context.Background(), &domain.Admin{Username: username, PasswordHash: hash})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func seedUser(t *testing.T, repo *stubUserRepo, username, email, password string) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user, err := repo.Insert(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pw" {
		t.Fatalf("expected password to be hashed")
	}
	if !CheckPassword(hash, "s3cret-pw") {
		t.Fatalf("hash does not verify against its own password")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("hash verified against wrong password")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	if CheckPassword("not-a-bcrypt-digest", "anything") {
		t.Fatalf("malformed digest must verify false")
	}
}

func TestAuthService_Login_Admin(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedAdmin(t, admins, "root", "adminpass")
	svc := newAuthService(admins, users)

	result, err := svc.Login(context.Background(), "root", "adminpass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.TokenType != "bearer" {
		t.Fatalf("unexpected token type: %s", result.TokenType)
	}
	if result.UserType != domain.KindAdmin {
		t.Fatalf("unexpected user type: %s", result.UserType)
	}
	if result.UserID != nil {
		t.Fatalf("admin login must not carry a user id, got %d", *result.UserID)
	}
	if result.Username != "root" {
		t.Fatalf("unexpected username: %s", result.Username)
	}
}

func TestAuthService_Login_UserByUsernameAndEmail(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seeded := seedUser(t, users, "alice", "alice@example.com", "userpass1")
	svc := newAuthService(admins, users)

	for _, identifier := range []string{"alice", "alice@example.com"} {
		result, err := svc.Login(context.Background(), identifier, "userpass1")
		if err != nil {
			t.Fatalf("Login(%q) returned error: %v", identifier, err)
		}
		if result.UserType != domain.KindUser {
			t.Fatalf("unexpected user type: %s", result.UserType)
		}
		if result.UserID == nil || *result.UserID != seeded.ID {
			t.Fatalf("unexpected user id: %v", result.UserID)
		}
		if result.Username != "alice" {
			t.Fatalf("unexpected username: %s", result.Username)
		}
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedUser(t, users, "bob", "bob@example.com", "correct-pw")
	svc := newAuthService(admins, users)

	_, unknownErr := svc.Login(context.Background(), "nobody", "whatever")
	_, wrongPwErr := svc.Login(context.Background(), "bob", "wrong-pw")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown identifier: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPwErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPwErr)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongPwErr)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubUserRepo())

	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty identifier: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "someone", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

// A username shared by an admin and a regular user resolves by password: the
// admin store wins, but a wrong admin password still reaches the user store.
func TestAuthService_Login_AdminPrecedenceWithFallThrough(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedAdmin(t, admins, "sam", "admin-pw")
	seedUser(t, users, "sam", "sam@example.com", "user-pw")
	svc := newAuthService(admins, users)

	asAdmin, err := svc.Login(context.Background(), "sam", "admin-pw")
	if err != nil {
		t.Fatalf("admin password login failed: %v", err)
	}
	if asAdmin.UserType != domain.KindAdmin {
		t.Fatalf("expected admin login, got %s", asAdmin.UserType)
	}

	asUser, err := svc.Login(context.Background(), "sam", "user-pw")
	if err != nil {
		t.Fatalf("user password login failed: %v", err)
	}
	if asUser.UserType != domain.KindUser {
		t.Fatalf("expected user login, got %s", asUser.UserType)
	}

	if _, err := svc.Login(context.Background(), "sam", "neither"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Admin tokens last exactly twice as long as user tokens.
func TestAuthService_Login_AdminTokenLifetime(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedAdmin(t, admins, "root", "adminpass")
	seedUser(t, users, "alice", "alice@example.com", "userpass1")
	svc := newAuthService(admins, users)

	adminResult, err := svc.Login(context.Background(), "root", "adminpass")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	userResult, err := svc.Login(context.Background(), "alice", "userpass1")
	if err != nil {
		t.Fatalf("user login: %v", err)
	}

	if got, want := tokenLifetime(t, adminResult.AccessToken), time.Hour; got != want {
		t.Fatalf("admin token lifetime = %v, want %v", got, want)
	}
	if got, want := tokenLifetime(t, userResult.AccessToken), 30*time.Minute; got != want {
		t.Fatalf("user token lifetime = %v, want %v", got, want)
	}
}

func tokenLifetime(t *testing.T, token string) time.Duration {
	t.Helper()
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	return claims.ExpiresAt.Sub(claims.IssuedAt.Time)
}

func TestAuthService_Authenticate_RoundTrip(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedAdmin(t, admins, "root", "adminpass")
	seeded := seedUser(t, users, "alice", "alice@example.com", "userpass1")
	svc := newAuthService(admins, users)

	adminLogin, _ := svc.Login(context.Background(), "root", "adminpass")
	principal, err := svc.Authenticate(context.Background(), adminLogin.AccessToken)
	if err != nil {
		t.Fatalf("Authenticate(admin token): %v", err)
	}
	if principal.Kind != domain.KindAdmin || principal.Admin == nil || principal.Admin.Username != "root" {
		t.Fatalf("unexpected admin principal: %+v", principal)
	}

	userLogin, _ := svc.Login(context.Background(), "alice", "userpass1")
	principal, err = svc.Authenticate(context.Background(), userLogin.AccessToken)
	if err != nil {
		t.Fatalf("Authenticate(user token): %v", err)
	}
	if principal.Kind != domain.KindUser || principal.User == nil || principal.User.ID != seeded.ID {
		t.Fatalf("unexpected user principal: %+v", principal)
	}
}

func TestAuthService_Authenticate_Tampered(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedAdmin(t, admins, "root", "adminpass")
	svc := newAuthService(admins, users)

	login, _ := svc.Login(context.Background(), "root", "adminpass")

	// Flip a character in the signature segment.
	parts := strings.Split(login.AccessToken, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Authenticate(context.Background(), tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Authenticate_Garbage(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubUserRepo())

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Authenticate(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubUserRepo())

	token, err := issueToken("test-secret", "root", domain.KindAdmin, nil, -time.Minute)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

// A token whose lifetime has fully elapsed is expired; one with any time
// remaining is not. Expiry carries no leeway.
func TestAuthService_Authenticate_ExpiryBoundary(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedAdmin(t, admins, "root", "adminpass")
	svc := newAuthService(admins, users)

	expired, err := issueToken("test-secret", "root", domain.KindAdmin, nil, 0)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), expired); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("zero-lifetime token: expected ErrExpiredToken, got %v", err)
	}

	almostExpired, err := issueToken("test-secret", "root", domain.KindAdmin, nil, 5*time.Second)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	principal, err := svc.Authenticate(context.Background(), almostExpired)
	if err != nil {
		t.Fatalf("token with time remaining: %v", err)
	}
	if principal.Kind != domain.KindAdmin {
		t.Fatalf("unexpected principal kind %q", principal.Kind)
	}
}

func TestAuthService_Authenticate_WrongSecret(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubUserRepo())

	token, err := issueToken("other-secret", "root", domain.KindAdmin, nil, time.Hour)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// A structurally valid token whose account has since been deleted must be
// rejected: validation always resolves against the live store.
func TestAuthService_Authenticate_DeletedPrincipal(t *testing.T) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	seedAdmin(t, admins, "root", "adminpass")
	svc := newAuthService(admins, users)

	login, _ := svc.Login(context.Background(), "root", "adminpass")
	delete(admins.admins, "root")

	if _, err := svc.Authenticate(context.Background(), login.AccessToken); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestAuthService_Authenticate_UserTokenWithoutID(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubUserRepo())

	token, err := issueToken("test-secret", "alice", domain.KindUser, nil, time.Hour)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownKind(t *testing.T) {
	svc := newAuthService(newStubAdminRepo(), newStubUserRepo())

	token, err := issueToken("test-secret", "ghost", domain.PrincipalKind("superuser"), nil, time.Hour)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_CreateAdmin_Duplicate(t *testing.T) {
	admins := newStubAdminRepo()
	svc := newAuthService(admins, newStubUserRepo())

	if _, err := svc.CreateAdmin(context.Background(), "ops", "strongpass"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if _, err := svc.CreateAdmin(context.Background(), "ops", "otherpass"); !errors.Is(err, domain.ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAuthService_EnsureDefaultAdmin(t *testing.T) {
	admins := newStubAdminRepo()
	svc := newAuthService(admins, newStubUserRepo())

	if err := svc.EnsureDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureDefaultAdmin: %v", err)
	}
	if _, ok := admins.admins[defaultAdminUsername]; !ok {
		t.Fatalf("default admin was not created")
	}

	// Second call is a no-op.
	if err := svc.EnsureDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureDefaultAdmin (second call): %v", err)
	}
	if len(admins.admins) != 1 {
		t.Fatalf("expected exactly one admin, got %d", len(admins.admins))
	}

	result, err := svc.Login(context.Background(), defaultAdminUsername, defaultAdminPassword)
	if err != nil {
		t.Fatalf("default admin login failed: %v", err)
	}
	if result.UserType != domain.KindAdmin {
		t.Fatalf("unexpected user type: %s", result.UserType)
	}
}

// EnsureDefaultAdmin must not run when any admin exists, even a custom one.
func TestAuthService_EnsureDefaultAdmin_SkipsWhenPopulated(t *testing.T) {
	admins := newStubAdminRepo()
	seedAdmin(t, admins, "existing", "pw12345678")
	svc := newAuthService(admins, newStubUserRepo())

	if err := svc.EnsureDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureDefaultAdmin: %v", err)
	}
	if _, ok := admins.admins[defaultAdminUsername]; ok {
		t.Fatalf("default admin must not be created when another admin exists")
	}
}
