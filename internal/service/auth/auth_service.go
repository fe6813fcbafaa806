package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/logger"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/utils"
	"github.com/labstack/gommon/random"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenTTL      = time.Hour
	resetTokenLength   = 48
	maxOpenResetTokens = 10
)

// Store is the persistence surface admin authentication needs.
type Store interface {
	CreateAdmin(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	ExistsAdminByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateAdminPassword(ctx context.Context, adminID int64, passwordHash string) error

	CreatePasswordResetToken(ctx context.Context, token *domain.PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	CountValidResetTokens(ctx context.Context, adminID int64, now time.Time) (int64, error)
	MarkResetTokenUsed(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Register(ctx context.Context, d *dto.RegisterDTO) (*dto.AuthTokenDTO, error) {
	exists, err := s.store.ExistsAdminByUsernameOrEmail(ctx, d.Username, d.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, constants.Conflict("username or email already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, constants.Wrap(constants.KindInternal, err, "failed to hash password")
	}

	admin, err := s.store.CreateAdmin(ctx, &domain.Admin{
		Username:     d.Username,
		Email:        d.Email,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(admin)
}

func (s *Service) Login(ctx context.Context, d *dto.LoginDTO) (*dto.AuthTokenDTO, error) {
	admin, err := s.findAdmin(ctx, d.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(d.Password)); err != nil {
		return nil, constants.Unauthorized("invalid credentials")
	}

	return s.issueToken(admin)
}

func (s *Service) findAdmin(ctx context.Context, usernameOrEmail string) (*domain.Admin, error) {
	if strings.Contains(usernameOrEmail, "@") {
		return s.store.GetAdminByEmail(ctx, usernameOrEmail)
	}
	return s.store.GetAdminByUsername(ctx, usernameOrEmail)
}

func (s *Service) issueToken(admin *domain.Admin) (*dto.AuthTokenDTO, error) {
	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		AdminID:  admin.ID,
		Username: admin.Username,
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthTokenDTO{Token: token}, nil
}

// GeneratePasswordResetToken issues a one-hour reset token for the
// admin behind the email. An unknown email is not revealed to the
// caller: the operation reports success either way.
func (s *Service) GeneratePasswordResetToken(ctx context.Context, email string) (string, error) {
	admin, err := s.store.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			logger.Warnf(ctx, "password reset requested for unknown email")
			return "", nil
		}
		return "", err
	}

	open, err := s.store.CountValidResetTokens(ctx, admin.ID, time.Now())
	if err != nil {
		return "", err
	}
	if open >= maxOpenResetTokens {
		return "", constants.RateLimited("too many open reset tokens")
	}

	token := random.String(resetTokenLength, random.Alphanumeric)
	err = s.store.CreatePasswordResetToken(ctx, &domain.PasswordResetToken{
		AdminID:   admin.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *Service) ValidateResetToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	resetToken, err := s.store.GetPasswordResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.Unauthorized("invalid reset token")
		}
		return nil, err
	}
	if resetToken.Used {
		return nil, constants.Unauthorized("reset token already used")
	}
	if time.Now().After(resetToken.ExpiresAt) {
		return nil, constants.Unauthorized("reset token expired")
	}

	return resetToken, nil
}

func (s *Service) ResetPassword(ctx context.Context, d *dto.ResetPasswordDTO) error {
	resetToken, err := s.ValidateResetToken(ctx, d.Token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
	if err != nil {
		return constants.Wrap(constants.KindInternal, err, "failed to hash password")
	}

	if err := s.store.UpdateAdminPassword(ctx, resetToken.AdminID, string(hash)); err != nil {
		return err
	}

	return s.store.MarkResetTokenUsed(ctx, resetToken.ID)
}
