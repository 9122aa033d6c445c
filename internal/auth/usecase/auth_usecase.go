package usecase

import (
	"errors"
	"strings"
	"time"

	"brewhub-backend/internal/auth/domain"
	"brewhub-backend/internal/auth/dto"
	"brewhub-backend/internal/auth/repository"
	"brewhub-backend/pkg/apperror"
	"brewhub-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// Username conflict is checked first and reported on its own
	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to register user", err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindConflict, "username already exists")
	}

	existing, err = u.userRepo.FindByEmailOrMobile(req.Email, req.Mobile)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to register user", err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindConflict, "email or mobile already registered")
	}

	hashedPassword, err := repository.HashPassword(req.Password, u.config.BcryptCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to register user", err)
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		// Two concurrent registrations can both pass the checks above;
		// the unique indexes are the real enforcement, so a duplicate
		// key here is still a conflict, not a server fault.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(apperror.KindConflict, "username, email or mobile already registered")
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to register user", err)
	}

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		ID:       user.ID,
	}, nil
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to log in", err)
	}

	// Same error for unknown user and wrong password, so login attempts
	// cannot probe which usernames exist
	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.New(apperror.KindAuth, "invalid username or password")
	}

	token, err := u.IssueToken(user.ID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to log in", err)
	}

	return &dto.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		ID:       user.ID,
		Token:    token,
	}, nil
}

func (u *authUsecase) IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) VerifyToken(raw string) (string, error) {
	raw = strings.TrimPrefix(raw, "Bearer ")

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", apperror.New(apperror.KindAuth, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.New(apperror.KindAuth, "invalid token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", apperror.New(apperror.KindAuth, "invalid token")
	}

	return userID, nil
}
