package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/platform/ctxutil"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/repos"
	"github.com/retodia/retodia-backend/internal/types"
)

type AuthService interface {
	RegisterUser(ctx context.Context, email, password, displayName string) (*types.User, error)
	LoginUser(ctx context.Context, email, password string) (accessToken, refreshToken string, user *types.User, err error)
	RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
	LogoutUser(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	adminEmail    string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	adminEmail string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		adminEmail:    strings.ToLower(strings.TrimSpace(adminEmail)),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *authService) RegisterUser(ctx context.Context, email, password, displayName string) (*types.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("an email is required to register")
	}
	if password == "" {
		return nil, fmt.Errorf("a password is required to register")
	}
	exists, err := s.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email is already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := types.RoleUser
	if s.adminEmail != "" && email == s.adminEmail {
		role = types.RoleAdmin
	}

	user := &types.User{
		ID:          uuid.New(),
		Email:       email,
		Password:    string(hashed),
		DisplayName: strings.TrimSpace(displayName),
		Role:        role,
	}
	if _, err := s.userRepo.Create(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user registered", "user_id", user.ID.String(), "role", role)
	return user, nil
}

func (s *authService) LoginUser(ctx context.Context, email, password string) (string, string, *types.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil, apierr.Unauthenticated(fmt.Errorf("invalid email or password"))
		}
		return "", "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", nil, apierr.Unauthenticated(fmt.Errorf("invalid email or password"))
	}

	var accessToken, refreshToken string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userTokenRepo.DeleteByUserID(ctx, tx, user.ID); err != nil {
			return fmt.Errorf("clear previous tokens: %w", err)
		}
		accessToken, err = s.generateAccessToken(user)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		refreshToken = uuid.New().String()
		_, err = s.userTokenRepo.Create(ctx, tx, &types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(s.refreshTTL),
		})
		return err
	})
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

func (s *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
	stored, err := s.userTokenRepo.GetByRefreshToken(ctx, nil, refreshToken)
	if err != nil {
		return "", "", apierr.Unauthenticated(fmt.Errorf("unknown refresh token"))
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.userTokenRepo.DeleteByRefreshToken(ctx, nil, refreshToken)
		return "", "", apierr.Unauthenticated(fmt.Errorf("refresh token expired"))
	}
	user, err := s.userRepo.GetByID(ctx, nil, stored.UserID)
	if err != nil {
		return "", "", apierr.Unauthenticated(fmt.Errorf("unknown user"))
	}

	var accessToken, newRefresh string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userTokenRepo.DeleteByRefreshToken(ctx, tx, refreshToken); err != nil {
			return err
		}
		accessToken, err = s.generateAccessToken(user)
		if err != nil {
			return err
		}
		newRefresh = uuid.New().String()
		_, err = s.userTokenRepo.Create(ctx, tx, &types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			RefreshToken: newRefresh,
			ExpiresAt:    time.Now().Add(s.refreshTTL),
		})
		return err
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefresh, nil
}

func (s *authService) LogoutUser(ctx context.Context) error {
	userID := ctxutil.UserID(ctx)
	if userID == uuid.Nil {
		return apierr.Unauthenticated(fmt.Errorf("no authenticated user"))
	}
	return s.userTokenRepo.DeleteByUserID(ctx, nil, userID)
}

func (s *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, apierr.Unauthenticated(fmt.Errorf("invalid token"))
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return ctx, apierr.Unauthenticated(fmt.Errorf("invalid subject claim"))
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID: userID,
		Email:  email,
		Role:   role,
	}), nil
}

func (s *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecretKey))
}
