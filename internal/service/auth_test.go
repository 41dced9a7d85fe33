package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/service"
	"github.com/shenikar/citizen_watch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-jwt-secret"

func newTestAuthService(t *testing.T) (service.AuthService, *mocks.MockOfficerRepository, *mocks.MockCredentialVerifier) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockOfficerRepository(ctrl)
	verifierMock := mocks.NewMockCredentialVerifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewAuthService(repoMock, verifierMock, logger, testSecret, time.Hour)
	return svc, repoMock, verifierMock
}

func activeEntry() *models.BadgeIndexEntry {
	return &models.BadgeIndexEntry{
		BadgeNumber: "KLA-001",
		UID:         "8a1c6c1e-3f0e-4f43-9a55-0c1b6a4f2d11",
		Email:       "officer@police.example",
		IsActive:    true,
	}
}

func TestAuthenticateOfficer_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, verifierMock := newTestAuthService(t)
	ctx := context.Background()
	entry := activeEntry()
	officer := &models.Officer{UID: entry.UID, BadgeNumber: entry.BadgeNumber, Email: entry.Email, Name: "Sgt. Okello", IsActive: true}

	// Ожидания
	repoMock.EXPECT().GetBadgeIndex(ctx, "KLA-001").Return(entry, nil)
	verifierMock.EXPECT().VerifyPassword(ctx, entry.Email, "secret123").Return(nil)
	repoMock.EXPECT().GetOfficerByBadge(ctx, "KLA-001").Return(officer, nil)

	// Действие
	session, err := svc.AuthenticateOfficer(ctx, " KLA-001 ", "secret123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, officer, session.Officer)
	assert.NotEmpty(t, session.Token)

	claims, err := svc.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "KLA-001", claims.Badge)
	assert.Equal(t, "officer", claims.Role)
	assert.Equal(t, entry.UID, claims.Subject)
}

func TestAuthenticateOfficer_Failures(t *testing.T) {
	cases := []struct {
		name     string
		setup    func(repo *mocks.MockOfficerRepository, verifier *mocks.MockCredentialVerifier)
		expected error
	}{
		{
			name: "unknown badge",
			setup: func(repo *mocks.MockOfficerRepository, _ *mocks.MockCredentialVerifier) {
				repo.EXPECT().GetBadgeIndex(gomock.Any(), "KLA-001").Return(nil, models.ErrNotFound)
			},
			expected: service.ErrInvalidBadge,
		},
		{
			name: "deactivated",
			setup: func(repo *mocks.MockOfficerRepository, _ *mocks.MockCredentialVerifier) {
				entry := activeEntry()
				entry.IsActive = false
				repo.EXPECT().GetBadgeIndex(gomock.Any(), "KLA-001").Return(entry, nil)
			},
			expected: service.ErrOfficerDeactivated,
		},
		{
			name: "no email",
			setup: func(repo *mocks.MockOfficerRepository, _ *mocks.MockCredentialVerifier) {
				entry := activeEntry()
				entry.Email = ""
				repo.EXPECT().GetBadgeIndex(gomock.Any(), "KLA-001").Return(entry, nil)
			},
			expected: service.ErrOfficerEmailNotFound,
		},
		{
			name: "wrong password",
			setup: func(repo *mocks.MockOfficerRepository, verifier *mocks.MockCredentialVerifier) {
				repo.EXPECT().GetBadgeIndex(gomock.Any(), "KLA-001").Return(activeEntry(), nil)
				verifier.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), "nope").Return(service.ErrInvalidCredentials)
			},
			expected: service.ErrInvalidCredentials,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repoMock, verifierMock := newTestAuthService(t)
			tc.setup(repoMock, verifierMock)

			password := "secret123"
			if errors.Is(tc.expected, service.ErrInvalidCredentials) {
				password = "nope"
			}
			session, err := svc.AuthenticateOfficer(context.Background(), "KLA-001", password)

			assert.Nil(t, session)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	// Подготовка
	svc, repoMock, verifierMock := newTestAuthService(t)
	ctx := context.Background()
	entry := activeEntry()
	issuedAt := time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)
	service.SetClock(svc, func() time.Time { return issuedAt })

	repoMock.EXPECT().GetBadgeIndex(ctx, "KLA-001").Return(entry, nil)
	verifierMock.EXPECT().VerifyPassword(ctx, entry.Email, "secret123").Return(nil)
	repoMock.EXPECT().GetOfficerByBadge(ctx, "KLA-001").Return(&models.Officer{UID: entry.UID, BadgeNumber: "KLA-001"}, nil)
	session, err := svc.AuthenticateOfficer(ctx, "KLA-001", "secret123")
	require.NoError(t, err)

	// Действие
	service.SetClock(svc, func() time.Time { return issuedAt.Add(2 * time.Hour) })
	claims, err := svc.ValidateToken(session.Token)

	// Проверки
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.OfficerClaims{
		Badge: "KLA-001", Role: "officer",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	citizen, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.OfficerClaims{
		Badge: "KLA-001", Role: "citizen",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"foreign secret": foreign,
		"wrong role":     citizen,
		"garbage":        "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestRegisterOfficer_HashesPassword(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAuthService(t)
	ctx := context.Background()
	officer := &models.Officer{BadgeNumber: "KLA-007", Email: "new@police.example", Name: "Cpl. Namubiru"}

	// Ожидания
	repoMock.EXPECT().CreateOfficer(ctx, officer, gomock.Any()).
		DoAndReturn(func(_ context.Context, o *models.Officer, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
			o.UID = "generated"
			return nil
		})

	// Действие
	err := svc.RegisterOfficer(ctx, officer, "secret123")

	// Проверки
	require.NoError(t, err)
	assert.True(t, officer.IsActive)
	assert.Equal(t, "Cpl. Namubiru", officer.DisplayName)
}

func TestRegisterOfficer_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	assert.Error(t, svc.RegisterOfficer(context.Background(), &models.Officer{Email: "a@b.c"}, "secret123"))
	assert.Error(t, svc.RegisterOfficer(context.Background(), &models.Officer{BadgeNumber: "X", Email: "a@b.c"}, "123"))
}

func TestBcryptVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockOfficerRepository(ctrl)
	verifier := service.NewBcryptVerifier(repoMock)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repoMock.EXPECT().GetPasswordHash(ctx, "officer@police.example").Return(string(hash), nil).Times(2)
	repoMock.EXPECT().GetPasswordHash(ctx, "ghost@police.example").Return("", models.ErrNotFound)

	assert.NoError(t, verifier.VerifyPassword(ctx, "officer@police.example", "secret123"))
	assert.ErrorIs(t, verifier.VerifyPassword(ctx, "officer@police.example", "wrong"), service.ErrInvalidCredentials)
	assert.ErrorIs(t, verifier.VerifyPassword(ctx, "ghost@police.example", "secret123"), service.ErrInvalidCredentials)
}
