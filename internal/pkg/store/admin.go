package store

import (
	"context"
	"time"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

var adminColumns = []string{"id", "username", "email", "first_name", "last_name", "password_hash", "created_at"}

var resetTokenColumns = []string{"id", "admin_id", "token", "expires_at", "used", "created_at"}

func (s *store) CreateAdmin(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query := builder().Insert(tableAdmins).
		Columns("username", "email", "first_name", "last_name", "password_hash").
		Values(admin.Username, admin.Email, admin.FirstName, admin.LastName, admin.PasswordHash).
		Suffix("RETURNING " + joinColumns(adminColumns))

	var created domain.Admin
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}

	return &created, nil
}

func (s *store) GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	return s.getAdmin(ctx, sq.Eq{"username": username})
}

func (s *store) GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return s.getAdmin(ctx, sq.Eq{"email": email})
}

func (s *store) getAdmin(ctx context.Context, where sq.Eq) (*domain.Admin, error) {
	query := builder().Select(adminColumns...).
		From(tableAdmins).
		Where(where)

	var selected domain.Admin
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ExistsAdminByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := builder().Select("count(*)").
		From(tableAdmins).
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		})

	var count int64
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return false, wrapErr(err)
	}

	return count > 0, nil
}

func (s *store) UpdateAdminPassword(ctx context.Context, adminID int64, passwordHash string) error {
	query := builder().Update(tableAdmins).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": adminID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) CreatePasswordResetToken(ctx context.Context, token *domain.PasswordResetToken) error {
	query := builder().Insert(tablePasswordResetTokens).
		Columns("admin_id", "token", "expires_at", "used").
		Values(token.AdminID, token.Token, token.ExpiresAt, token.Used)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetPasswordResetToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	query := builder().Select(resetTokenColumns...).
		From(tablePasswordResetTokens).
		Where(sq.Eq{"token": token})

	var selected domain.PasswordResetToken
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) CountValidResetTokens(ctx context.Context, adminID int64, now time.Time) (int64, error) {
	query := builder().Select("count(*)").
		From(tablePasswordResetTokens).
		Where(sq.And{
			sq.Eq{"admin_id": adminID},
			sq.Eq{"used": false},
			sq.Gt{"expires_at": now},
		})

	var count int64
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) MarkResetTokenUsed(ctx context.Context, id int64) error {
	query := builder().Update(tablePasswordResetTokens).
		Set("used", true).
		Where(sq.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
