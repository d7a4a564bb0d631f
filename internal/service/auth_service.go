package service

import (
	"context"
	"errors"
	"time"

	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/model"
	"ossu_arabic_backend/internal/repository"
	"ossu_arabic_backend/internal/util"
	"ossu_arabic_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	cfg      *config.Config
}

func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, sessions: sessions, cfg: cfg}
}

// GuestSession mints an anonymous 24h identity with no relational record.
func (s *AuthService) GuestSession(ctx context.Context, preferredLanguage string) (*model.Session, error) {
	if preferredLanguage == "" {
		preferredLanguage = "ar"
	}

	now := time.Now()
	session := &model.Session{
		UserID:            util.GenerateID("guest"),
		Type:              model.SessionGuest,
		PreferredLanguage: preferredLanguage,
		CreatedAt:         now,
		ExpiresAt:         now.Add(model.GuestSessionTTL),
	}

	if err := s.sessions.Put(ctx, session, model.GuestSessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// Login looks the user up by username or email (exactly one is required by
// the handler) and refreshes a 7-day session.
func (s *AuthService) Login(ctx context.Context, username, email string) (*model.User, *model.Session, error) {
	var (
		user *model.User
		err  error
	)
	if username != "" {
		user, err = s.users.FindByUsername(username)
	} else {
		user, err = s.users.FindByEmail(email)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Register inserts the user row and mints a 7-day session. A uniqueness
// violation maps to the conflict error the handler answers 409 with.
func (s *AuthService) Register(ctx context.Context, username, email, displayName, preferredLanguage, password string) (*model.User, *model.Session, error) {
	if displayName == "" {
		displayName = username
	}
	if preferredLanguage == "" {
		preferredLanguage = "ar"
	}

	user := &model.User{
		ID:                util.GenerateID("user"),
		Username:          username,
		Email:             email,
		DisplayName:       displayName,
		PreferredLanguage: preferredLanguage,
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, util.ErrUserExists
		}
		return nil, nil, err
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Profile returns the stored session; absence is a not-found condition,
// never an internal fault.
func (s *AuthService) Profile(ctx context.Context, userID string) (*model.Session, error) {
	return s.sessions.Get(ctx, userID)
}

func (s *AuthService) openSession(ctx context.Context, user *model.User) (*model.Session, error) {
	now := time.Now()
	session := &model.Session{
		UserID:            user.ID,
		Type:              model.SessionAuthenticated,
		Username:          user.Username,
		Email:             user.Email,
		DisplayName:       user.DisplayName,
		PreferredLanguage: user.PreferredLanguage,
		CreatedAt:         now,
		ExpiresAt:         now.Add(model.AuthSessionTTL),
	}
	if err := s.sessions.Put(ctx, session, model.AuthSessionTTL); err != nil {
		// The user row exists; a dead session store should not fail auth.
		logger.Log.Warn("session store write failed",
			zap.String("userId", user.ID), zap.Error(err))
	}
	return session, nil
}
