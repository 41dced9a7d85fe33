package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mocks/auth.go -package=mocks

const officerRole = "officer"

var (
	ErrInvalidBadge         = errors.New("invalid badge number")
	ErrOfficerDeactivated   = errors.New("officer account is deactivated")
	ErrOfficerEmailNotFound = errors.New("officer email not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
)

// OfficerRepository определяет контракт хранилища офицеров и индекса жетонов
type OfficerRepository interface {
	GetBadgeIndex(ctx context.Context, badgeNumber string) (*models.BadgeIndexEntry, error)
	GetOfficerByBadge(ctx context.Context, badgeNumber string) (*models.Officer, error)
	GetPasswordHash(ctx context.Context, email string) (string, error)
	CreateOfficer(ctx context.Context, officer *models.Officer, passwordHash string) error
	SetOfficerActive(ctx context.Context, badgeNumber string, active bool) error
}

// CredentialVerifier проверяет пару email/пароль
type CredentialVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) error
}

// AuthService определяет контракт входа офицеров по номеру жетона
type AuthService interface {
	AuthenticateOfficer(ctx context.Context, badgeNumber, password string) (*OfficerSession, error)
	ValidateToken(token string) (*OfficerClaims, error)
	RegisterOfficer(ctx context.Context, officer *models.Officer, password string) error
	SetOfficerActive(ctx context.Context, badgeNumber string, active bool) error
}

// OfficerSession - результат успешного входа
type OfficerSession struct {
	Officer   *models.Officer
	Token     string
	ExpiresAt time.Time
}

// OfficerClaims - полезная нагрузка токена офицера
type OfficerClaims struct {
	Badge string `json:"badge"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	repo     OfficerRepository
	verifier CredentialVerifier
	logger   *logrus.Logger
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(repo OfficerRepository, verifier CredentialVerifier, logger *logrus.Logger, secret string, ttl time.Duration) AuthService {
	return &authService{
		repo:     repo,
		verifier: verifier,
		logger:   logger,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

// AuthenticateOfficer: жетон -> индекс -> проверка активности и email -> пароль -> профиль
func (s *authService) AuthenticateOfficer(ctx context.Context, badgeNumber, password string) (*OfficerSession, error) {
	badgeNumber = strings.TrimSpace(badgeNumber)
	log := s.logger.WithFields(logrus.Fields{
		"service":       "auth",
		"method":        "AuthenticateOfficer",
		"officer_badge": badgeNumber,
	})

	entry, err := s.repo.GetBadgeIndex(ctx, badgeNumber)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login attempt with unknown badge number")
			return nil, ErrInvalidBadge
		}
		log.WithError(err).Error("Failed to read badge index")
		return nil, fmt.Errorf("service: could not read badge index: %w", err)
	}
	if !entry.IsActive {
		log.Warn("Login attempt for deactivated officer")
		return nil, ErrOfficerDeactivated
	}
	if entry.Email == "" {
		log.Warn("Badge index entry has no email")
		return nil, ErrOfficerEmailNotFound
	}

	if err := s.verifier.VerifyPassword(ctx, entry.Email, password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn("Login attempt with wrong password")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to verify officer credentials")
		return nil, fmt.Errorf("service: could not verify credentials: %w", err)
	}

	officer, err := s.repo.GetOfficerByBadge(ctx, badgeNumber)
	if err != nil {
		log.WithError(err).Error("Failed to load officer profile")
		return nil, fmt.Errorf("service: could not load officer profile: %w", err)
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.issueToken(officer, expiresAt)
	if err != nil {
		log.WithError(err).Error("Failed to sign officer token")
		return nil, fmt.Errorf("service: could not sign token: %w", err)
	}

	log.Info("Officer signed in")
	return &OfficerSession{Officer: officer, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) issueToken(officer *models.Officer, expiresAt time.Time) (string, error) {
	claims := &OfficerClaims{
		Badge: officer.BadgeNumber,
		Role:  officerRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   officer.UID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken проверяет подпись, срок и роль токена
func (s *authService) ValidateToken(token string) (*OfficerClaims, error) {
	claims := &OfficerClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != officerRole || claims.Badge == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RegisterOfficer создает офицера вместе с записью индекса жетонов
func (s *authService) RegisterOfficer(ctx context.Context, officer *models.Officer, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "auth",
		"method":        "RegisterOfficer",
		"officer_badge": officer.BadgeNumber,
	})

	if officer.BadgeNumber == "" || officer.Email == "" {
		return fmt.Errorf("service: badge number and email are required")
	}
	if len(password) < 6 {
		return fmt.Errorf("service: password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}

	if officer.DisplayName == "" {
		officer.DisplayName = officer.Name
	}
	officer.IsActive = true

	if err := s.repo.CreateOfficer(ctx, officer, string(hash)); err != nil {
		log.WithError(err).Error("Failed to create officer in repository")
		return fmt.Errorf("service: could not create officer: %w", err)
	}

	log.WithField("officer_uid", officer.UID).Info("Officer registered")
	return nil
}

func (s *authService) SetOfficerActive(ctx context.Context, badgeNumber string, active bool) error {
	if err := s.repo.SetOfficerActive(ctx, badgeNumber, active); err != nil {
		return fmt.Errorf("service: could not update officer state: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":       "auth",
		"method":        "SetOfficerActive",
		"officer_badge": badgeNumber,
		"active":        active,
	}).Info("Officer state updated")
	return nil
}

type bcryptVerifier struct {
	repo OfficerRepository
}

// NewBcryptVerifier сверяет пароль с bcrypt-хешем из таблицы офицеров
func NewBcryptVerifier(repo OfficerRepository) CredentialVerifier {
	return &bcryptVerifier{repo: repo}
}

func (v *bcryptVerifier) VerifyPassword(ctx context.Context, email, password string) error {
	hash, err := v.repo.GetPasswordHash(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
