package auth

import (
	"context"
	"testing"
	"time"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/spf13/viper"
)

type fakeStore struct {
	admins      []*domain.Admin
	resetTokens []*domain.PasswordResetToken
	nextID      int64
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateAdmin(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	created := *admin
	created.ID = f.id()
	f.admins = append(f.admins, &created)
	return &created, nil
}

func (f *fakeStore) GetAdminByUsername(_ context.Context, username string) (*domain.Admin, error) {
	for _, admin := range f.admins {
		if admin.Username == username {
			return admin, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetAdminByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) ExistsAdminByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, admin := range f.admins {
		if admin.Username == username || admin.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateAdminPassword(_ context.Context, adminID int64, passwordHash string) error {
	for _, admin := range f.admins {
		if admin.ID == adminID {
			admin.PasswordHash = passwordHash
			return nil
		}
	}
	return constants.ErrDBNotFound
}

func (f *fakeStore) CreatePasswordResetToken(_ context.Context, token *domain.PasswordResetToken) error {
	created := *token
	created.ID = f.id()
	f.resetTokens = append(f.resetTokens, &created)
	return nil
}

func (f *fakeStore) GetPasswordResetToken(_ context.Context, token string) (*domain.PasswordResetToken, error) {
	for _, resetToken := range f.resetTokens {
		if resetToken.Token == token {
			return resetToken, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) CountValidResetTokens(_ context.Context, adminID int64, now time.Time) (int64, error) {
	var count int64
	for _, resetToken := range f.resetTokens {
		if resetToken.AdminID == adminID && !resetToken.Used && resetToken.ExpiresAt.After(now) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) MarkResetTokenUsed(_ context.Context, id int64) error {
	for _, resetToken := range f.resetTokens {
		if resetToken.ID == id {
			resetToken.Used = true
			return nil
		}
	}
	return constants.ErrDBNotFound
}

func registerDTO() *dto.RegisterDTO {
	return &dto.RegisterDTO{
		Username:        "admin",
		Email:           "admin@example.com",
		FirstName:       "Ada",
		LastName:        "Mensah",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	}
}

func TestMain(m *testing.M) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	m.Run()
}

func TestRegisterAndLogin(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	token, err := svc.Register(context.Background(), registerDTO())
	if err != nil {
		t.Fatal(err)
	}
	if token.Token == "" {
		t.Error("expected a token after registration")
	}
	if store.admins[0].PasswordHash == "correct-horse" {
		t.Error("password stored in plain text")
	}

	loginToken, err := svc.Login(context.Background(), &dto.LoginDTO{
		UsernameOrEmail: "admin",
		Password:        "correct-horse",
	})
	if err != nil {
		t.Fatal(err)
	}
	if loginToken.Token == "" {
		t.Error("expected a token after login")
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	svc := NewService(&fakeStore{})

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Register(context.Background(), registerDTO())
	if constants.KindOf(err) != constants.KindConflict {
		t.Errorf("kind = %v, want conflict", constants.KindOf(err))
	}
}

func TestLoginByEmail(t *testing.T) {
	svc := NewService(&fakeStore{})

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginDTO{
		UsernameOrEmail: "admin@example.com",
		Password:        "correct-horse",
	}); err != nil {
		t.Fatal(err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(&fakeStore{})

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginDTO{
		UsernameOrEmail: "admin",
		Password:        "wrong",
	})
	if constants.KindOf(err) != constants.KindUnauthorized {
		t.Errorf("kind = %v, want unauthorized", constants.KindOf(err))
	}
}

func TestLoginUnknownUserIsUnauthorized(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Login(context.Background(), &dto.LoginDTO{
		UsernameOrEmail: "ghost",
		Password:        "whatever",
	})
	if constants.KindOf(err) != constants.KindUnauthorized {
		t.Errorf("kind = %v, want unauthorized", constants.KindOf(err))
	}
}

func TestPasswordResetFlow(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatal(err)
	}

	token, err := svc.GeneratePasswordResetToken(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("expected a reset token")
	}

	if err := svc.ResetPassword(context.Background(), &dto.ResetPasswordDTO{
		Token:           token,
		Password:        "new-password-1",
		ConfirmPassword: "new-password-1",
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginDTO{
		UsernameOrEmail: "admin",
		Password:        "new-password-1",
	}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}

	// a token is single-use
	err = svc.ResetPassword(context.Background(), &dto.ResetPasswordDTO{
		Token:           token,
		Password:        "another-password",
		ConfirmPassword: "another-password",
	})
	if constants.KindOf(err) != constants.KindUnauthorized {
		t.Errorf("kind = %v, want unauthorized for reused token", constants.KindOf(err))
	}
}

func TestResetTokenRateLimit(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < maxOpenResetTokens; i++ {
		if _, err := svc.GeneratePasswordResetToken(context.Background(), "admin@example.com"); err != nil {
			t.Fatal(err)
		}
	}

	_, err := svc.GeneratePasswordResetToken(context.Background(), "admin@example.com")
	if constants.KindOf(err) != constants.KindRateLimited {
		t.Errorf("kind = %v, want rate_limited", constants.KindOf(err))
	}
}

func TestForgotPasswordHidesUnknownEmail(t *testing.T) {
	svc := NewService(&fakeStore{})

	token, err := svc.GeneratePasswordResetToken(context.Background(), "nobody@example.com")
	if err != nil {
		t.Errorf("unknown email must not error, got %v", err)
	}
	if token != "" {
		t.Error("unknown email must not produce a token")
	}
}

func TestValidateResetTokenExpiry(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatal(err)
	}

	_ = store.CreatePasswordResetToken(context.Background(), &domain.PasswordResetToken{
		AdminID:   store.admins[0].ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, err := svc.ValidateResetToken(context.Background(), "expired-token")
	if constants.KindOf(err) != constants.KindUnauthorized {
		t.Errorf("kind = %v, want unauthorized for expired token", constants.KindOf(err))
	}
}
