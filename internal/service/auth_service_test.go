package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
)

func newAuthFixture(adminRepo *MockAdminRepository, tokenStore *MockTokenStore, mail *MockMailer) AuthService {
	jwtService := auth.NewJWTService("test-secret")
	return NewAuthService(adminRepo, jwtService, tokenStore, mail, "admin@example.com", "https://example.com")
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAdminRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "admin@example.com",
			password: "password123",
			setupMock: func(mRepo *MockAdminRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("UserByEmail", mock.Anything, "admin@example.com").Return(&model.AdminUser{
					ID:           1,
					Email:        "admin@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, 1, "admin@example.com", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(mRepo *MockAdminRepository, mToken *MockTokenStore) {
				mRepo.On("UserByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "wrong",
			setupMock: func(mRepo *MockAdminRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("UserByEmail", mock.Anything, "admin@example.com").Return(&model.AdminUser{
					ID:           1,
					Email:        "admin@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			service := newAuthFixture(mockRepo, mockTokenStore, new(MockMailer))
			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_ConsumeTokenAndSetPassword(t *testing.T) {
	t.Run("valid token is consumed once and password stored", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindValidTokenForUpdate", mock.Anything, "tok-value").Return(&model.AdminToken{
			ID:        3,
			Email:     "admin@example.com",
			Token:     "tok-value",
			Type:      model.TokenTypeSetup,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		mockRepo.On("MarkTokenUsed", mock.Anything, 3).Return(nil)
		mockRepo.On("UpsertUser", mock.Anything, "admin@example.com", "hash").Return(nil)

		service := newAuthFixture(mockRepo, new(MockTokenStore), new(MockMailer))
		email, err := service.ConsumeTokenAndSetPassword(context.Background(), "tok-value", "hash")

		assert.NoError(t, err)
		assert.Equal(t, "admin@example.com", email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown or expired token leaves the user untouched", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindValidTokenForUpdate", mock.Anything, "stale").Return(nil, nil)

		service := newAuthFixture(mockRepo, new(MockTokenStore), new(MockMailer))
		email, err := service.ConsumeTokenAndSetPassword(context.Background(), "stale", "hash")

		assert.ErrorIs(t, err, errors.ErrInvalidOrExpiredToken)
		assert.Empty(t, email)
		mockRepo.AssertNotCalled(t, "MarkTokenUsed", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "UpsertUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Bootstrap(t *testing.T) {
	t.Run("existing admin needs no setup", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockRepo.On("UserCount", mock.Anything).Return(int64(1), nil)

		service := newAuthFixture(mockRepo, new(MockTokenStore), new(MockMailer))
		result, err := service.Bootstrap(context.Background())

		assert.NoError(t, err)
		assert.False(t, result.NeedsSetup)
		mockRepo.AssertNotCalled(t, "ActiveToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty install reuses the active token and mails the link", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockRepo.On("UserCount", mock.Anything).Return(int64(0), nil)
		mockRepo.On("ActiveToken", mock.Anything, "admin@example.com", model.TokenTypeSetup).Return(&model.AdminToken{
			ID:        1,
			Email:     "admin@example.com",
			Token:     "existing-token",
			Type:      model.TokenTypeSetup,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		mockMailer := new(MockMailer)
		mockMailer.On("Send", mock.AnythingOfType("mailer.Message")).Return(nil)

		service := newAuthFixture(mockRepo, new(MockTokenStore), mockMailer)
		result, err := service.Bootstrap(context.Background())

		assert.NoError(t, err)
		assert.True(t, result.NeedsSetup)
		assert.Equal(t, "admin@example.com", result.Email)
		assert.True(t, result.EmailSent)
		mockRepo.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything)
		mockMailer.AssertExpectations(t)
	})

	t.Run("mail failure is reported, not fatal", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockRepo.On("UserCount", mock.Anything).Return(int64(0), nil)
		mockRepo.On("ActiveToken", mock.Anything, "admin@example.com", model.TokenTypeSetup).Return(nil, nil)
		mockRepo.On("CreateToken", mock.Anything, mock.AnythingOfType("*model.AdminToken")).Return(nil)

		mockMailer := new(MockMailer)
		mockMailer.On("Send", mock.Anything).Return(assert.AnError)

		service := newAuthFixture(mockRepo, new(MockTokenStore), mockMailer)
		result, err := service.Bootstrap(context.Background())

		assert.NoError(t, err)
		assert.True(t, result.NeedsSetup)
		assert.False(t, result.EmailSent)
	})
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "admin@example.com")
	assert.NoError(t, err)

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(1, "admin@example.com", nil)

		service := NewAuthService(new(MockAdminRepository), jwtService, mockTokenStore, new(MockMailer), "admin@example.com", "https://example.com")
		accessToken, err := service.Refresh(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("mismatched session is rejected", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(2, "other@example.com", nil)

		service := NewAuthService(new(MockAdminRepository), jwtService, mockTokenStore, new(MockMailer), "admin@example.com", "https://example.com")
		_, err := service.Refresh(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("logout deletes the stored session", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

		service := NewAuthService(new(MockAdminRepository), jwtService, mockTokenStore, new(MockMailer), "admin@example.com", "https://example.com")
		err := service.Logout(context.Background(), refreshToken)

		assert.NoError(t, err)
		mockTokenStore.AssertExpectations(t)
	})
}
