package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

// Built-in bootstrap credentials, inserted on first run when the admin store
// is empty. Rotate the password through /admin/create on a fresh deployment.
const (
	defaultAdminUsername = "monkeypox"
	defaultAdminPassword = "hotcheetosaregreat"
)

const defaultUserTTL = 30 * time.Minute

// AuthService implements login, token issuance and token validation over the
// two credential stores. Admin tokens live twice as long as user tokens so
// operational staff re-authenticate less often; that is a convenience
// trade-off, not a security recommendation.
type AuthService struct {
	admins  ports.AdminRepository
	users   ports.UserRepository
	secret  string
	userTTL time.Duration
	log     zerolog.Logger
}

func NewAuthService(admins ports.AdminRepository, users ports.UserRepository, secret string, userTTL time.Duration, log zerolog.Logger) *AuthService {
	if userTTL <= 0 {
		userTTL = defaultUserTTL
	}
	return &AuthService{admins: admins, users: users, secret: secret, userTTL: userTTL, log: log}
}

// Login resolves the identifier against the admin store first, then against
// users by username or email. An identifier that exists in both stores always
// authenticates as the admin. Unknown identifier and wrong password produce
// the same error.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, identifier)
	switch {
	case err == nil:
		if CheckPassword(admin.PasswordHash, password) {
			token, err := issueToken(s.secret, admin.Username, domain.KindAdmin, nil, 2*s.userTTL)
			if err != nil {
				return nil, err
			}
			s.log.Info().Str("username", admin.Username).Msg("admin login")
			return &ports.LoginResult{
				AccessToken: token,
				TokenType:   "bearer",
				UserType:    domain.KindAdmin,
				Username:    admin.Username,
			}, nil
		}
		// Wrong password for an admin username falls through to the user
		// store: the same string may name a regular user with that password.
	case !errors.Is(err, domain.ErrPrincipalNotFound):
		return nil, err
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	id := user.ID
	token, err := issueToken(s.secret, user.Username, domain.KindUser, &id, s.userTTL)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user login")
	return &ports.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    domain.KindUser,
		UserID:      &id,
		Username:    user.Username,
	}, nil
}

// Authenticate validates a bearer token and resolves the claims to a live
// record. A token for a deleted account fails with ErrPrincipalNotFound even
// when signature and expiry are fine; a password change does not invalidate
// outstanding tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	switch claims.UserType {
	case domain.KindAdmin:
		admin, err := s.admins.FindByUsername(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, domain.ErrPrincipalNotFound) {
				return nil, domain.ErrPrincipalNotFound
			}
			return nil, err
		}
		return &domain.Principal{Kind: domain.KindAdmin, Admin: admin}, nil

	case domain.KindUser:
		if claims.UserID == nil {
			return nil, domain.ErrInvalidToken
		}
		user, err := s.users.FindByID(ctx, *claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrPrincipalNotFound) {
				return nil, domain.ErrPrincipalNotFound
			}
			return nil, err
		}
		return &domain.Principal{Kind: domain.KindUser, User: user}, nil

	default:
		return nil, domain.ErrInvalidToken
	}
}

// CreateAdmin registers a new operator account.
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (*domain.Admin, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.admins.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrAdminExists
	} else if !errors.Is(err, domain.ErrPrincipalNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.admins.Insert(ctx, &domain.Admin{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Msg("admin account created")
	return created, nil
}

// EnsureDefaultAdmin inserts the built-in admin when no admin exists yet.
// Check-then-insert is not atomic; concurrent cold starts could race, which
// is acceptable under the single-instance deployment this targets.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	exists, err := s.admins.Any(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := s.CreateAdmin(ctx, defaultAdminUsername, defaultAdminPassword); err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			return nil
		}
		return err
	}
	s.log.Warn().Str("username", defaultAdminUsername).Msg("default admin created, change its password")
	return nil
}
