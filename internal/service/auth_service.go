package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/mailer"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	bcryptCost = 12
	// tokenTTL is how long a mailed setup/reset link stays valid.
	tokenTTL = 120 * time.Minute
)

// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
var ErrInvalidRefreshToken = fmt.Errorf("invalid or expired refresh token")

// BootstrapResult reports the first-user setup state.
type BootstrapResult struct {
	NeedsSetup bool   `json:"needs_setup"`
	Email      string `json:"email,omitempty"`
	EmailSent  bool   `json:"email_sent"`
}

// AuthService handles admin authentication: the email-based first-user
// bootstrap, single-use setup/reset tokens and password login.
type AuthService interface {
	Bootstrap(ctx context.Context) (*BootstrapResult, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.AdminUser, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	Setup(ctx context.Context, token, password string) (accessToken, refreshToken, email string, err error)
	ConsumeTokenAndSetPassword(ctx context.Context, token, passwordHash string) (email string, err error)
	SendResetEmail(ctx context.Context) error
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	mail       mailer.Mailer
	adminEmail string
	siteURL    string
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	adminRepo repository.AdminRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	mail mailer.Mailer,
	adminEmail, siteURL string,
) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		mail:       mail,
		adminEmail: adminEmail,
		siteURL:    siteURL,
	}
}

// Bootstrap drives the first-user flow: when no admin user exists yet,
// it reuses the active setup token for the configured admin email (or
// mints a new one) and mails the setup link. The mail send is best
// effort; the result reports whether it went out.
func (s *authService) Bootstrap(ctx context.Context) (*BootstrapResult, error) {
	count, err := s.adminRepo.UserCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return &BootstrapResult{NeedsSetup: false}, nil
	}
	if s.adminEmail == "" {
		return nil, errors.ErrAdminEmailMissing
	}

	token, err := s.activeOrNewToken(ctx, s.adminEmail, model.TokenTypeSetup)
	if err != nil {
		return nil, err
	}

	link := s.setupLink(token)
	sent := true
	if err := s.mail.Send(mailer.Message{
		FromName: "Portfolio Admin",
		To:       s.adminEmail,
		Subject:  "Configuration de votre accès admin",
		Text:     fmt.Sprintf("Bonjour,\n\nCliquez sur ce lien pour définir votre mot de passe admin: %s\nCe lien est valable 2 heures.", link),
		HTML:     fmt.Sprintf(`<p>Bonjour,</p><p>Cliquez sur ce lien pour définir votre mot de passe admin:</p><p><a href="%s">%s</a></p><p>Ce lien est valable 2 heures.</p>`, link, link),
	}); err != nil {
		sent = false
	}
	return &BootstrapResult{NeedsSetup: true, Email: s.adminEmail, EmailSent: sent}, nil
}

// activeOrNewToken returns the value of the active token for
// (email, type), creating one when none exists.
func (s *authService) activeOrNewToken(ctx context.Context, email, tokenType string) (string, error) {
	existing, err := s.adminRepo.ActiveToken(ctx, email, tokenType)
	if err != nil {
		return "", fmt.Errorf("look up active token: %w", err)
	}
	if existing != nil {
		return existing.Token, nil
	}

	value, err := generateToken()
	if err != nil {
		return "", err
	}
	t := model.AdminToken{
		Email:     email,
		Token:     value,
		Type:      tokenType,
		ExpiresAt: time.Now().Add(tokenTTL),
	}
	if err := s.adminRepo.CreateToken(ctx, &t); err != nil {
		return "", fmt.Errorf("create %s token: %w", tokenType, err)
	}
	return value, nil
}

// Login authenticates an admin and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, *model.AdminUser, error) {
	user, err := s.adminRepo.UserByEmail(ctx, email)
	if err != nil {
		return "", "", nil, fmt.Errorf("find admin user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return "", "", nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}
	access, refresh, err := s.issueTokens(ctx, user)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, user, nil
}

func (s *authService) issueTokens(ctx context.Context, user *model.AdminUser) (string, string, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}
	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	storedUserID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	if storedUserID != claims.UserID || storedEmail != claims.Email {
		return "", ErrInvalidRefreshToken
	}
	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// Setup consumes a setup/reset token, stores the new password hash and
// logs the admin straight in.
func (s *authService) Setup(ctx context.Context, token, password string) (string, string, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", "", "", fmt.Errorf("hash password: %w", err)
	}
	email, err := s.ConsumeTokenAndSetPassword(ctx, token, string(hash))
	if err != nil {
		return "", "", "", err
	}
	user, err := s.adminRepo.UserByEmail(ctx, email)
	if err != nil || user == nil {
		return "", "", "", fmt.Errorf("load admin user after setup: %w", err)
	}
	access, refresh, err := s.issueTokens(ctx, user)
	if err != nil {
		return "", "", "", err
	}
	return access, refresh, email, nil
}

// ConsumeTokenAndSetPassword marks a valid token used and upserts the
// admin user with the given password hash, all in one transaction. The
// token row is locked during consumption so exactly one of two
// concurrent callers succeeds; the other gets the invalid-token error.
func (s *authService) ConsumeTokenAndSetPassword(ctx context.Context, token, passwordHash string) (string, error) {
	var email string
	err := s.adminRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.AdminRepository) error {
		row, err := repo.FindValidTokenForUpdate(ctx, token)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.ErrInvalidOrExpiredToken
		}
		if err := repo.MarkTokenUsed(ctx, row.ID); err != nil {
			return err
		}
		email = row.Email
		return repo.UpsertUser(ctx, row.Email, passwordHash)
	})
	if err != nil {
		return "", err
	}
	return email, nil
}

// SendResetEmail mints a reset token for the configured admin email
// and mails the link.
func (s *authService) SendResetEmail(ctx context.Context) error {
	if s.adminEmail == "" {
		return errors.ErrAdminEmailMissing
	}
	token, err := s.activeOrNewToken(ctx, s.adminEmail, model.TokenTypeReset)
	if err != nil {
		return err
	}
	link := s.setupLink(token)
	return s.mail.Send(mailer.Message{
		FromName: "Portfolio Admin",
		To:       s.adminEmail,
		Subject:  "Réinitialisation de votre mot de passe admin",
		Text:     fmt.Sprintf("Cliquez sur ce lien pour réinitialiser votre mot de passe: %s\nValide 2 heures.", link),
		HTML:     fmt.Sprintf(`<p>Cliquez sur ce lien pour réinitialiser votre mot de passe:</p><p><a href="%s">%s</a></p><p>Valide 2 heures.</p>`, link, link),
	})
}

func (s *authService) setupLink(token string) string {
	return fmt.Sprintf("%s/setup?token=%s", s.siteURL, url.QueryEscape(token))
}

// generateToken returns 32 random bytes as hex, the stored token value.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
