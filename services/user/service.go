// Package user implements account signup and signin. Sessions are a JWT
// whose SHA-256 hash is cached in redis and persisted in Mongo, so token
// checks stay off the database on the hot path.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fixly/database/repository"
	"fixly/models"
	"fixly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the session lifetime for issued tokens.
const TokenTTL = 72 * time.Hour

// UserService defines account operations.
type UserService interface {
	Signup(user models.User) (*models.User, error)
	Signin(email, password string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Signout(userID string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo repository.UserRepository

	// AuthCache holds session token hashes. Nil disables caching and the
	// auth middleware falls back to the database.
	AuthCache *redis.Client
}

// Signup registers a new account and returns it with a fresh token.
func (s *DefaultUserService) Signup(user models.User) (*models.User, error) {
	logger := utils.GetLogger()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		logger.Error("failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ID = uuid.New().String()
	user.PasswordHash = string(hashed)
	user.Password = ""
	user.CreatedAt = time.Now()

	token, err := utils.GenerateToken(user.ID, user.Email, "user", TokenTTL)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.Token = token
	user.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&user); err != nil {
		logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.cacheTokenHash(user.ID, user.TokenHash)

	logger.Info("user signed up", zap.String("userID", user.ID))
	return &user, nil
}

// Signin verifies credentials and rotates the session token.
func (s *DefaultUserService) Signin(email, password string) (*models.User, error) {
	logger := utils.GetLogger()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, "user", TokenTTL)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.Token = token
	user.TokenHash = utils.HashToken(token)

	if err := s.Repo.Update(user); err != nil {
		logger.Error("failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	s.cacheTokenHash(user.ID, user.TokenHash)

	logger.Info("user signed in", zap.String("userID", user.ID))
	return user, nil
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return user, nil
}

// Signout invalidates the current session by clearing the stored hash.
func (s *DefaultUserService) Signout(userID string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	user.TokenHash = ""
	if err := s.Repo.Update(user); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("failed to evict auth cache entry", zap.Error(err))
		}
	}
	return nil
}

// cacheTokenHash writes the token hash to the auth cache. Cache failures
// only cost a database lookup on the next request, so they are not fatal.
func (s *DefaultUserService) cacheTokenHash(userID, tokenHash string) {
	if s.AuthCache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+userID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.Error(err))
	}
}
