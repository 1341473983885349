package repository

import (
	"context"
	"errors"

	"shiftboard/internal/domain/user"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const userColumns = `id, email, name, role, company_id, is_active`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email)

	var rm readmodel.UserRM
	var passwordHash string
	err := row.Scan(&rm.ID, &rm.Email, &rm.Name, &rm.Role, &rm.CompanyID, &rm.IsActive, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	var rm readmodel.UserRM
	err := row.Scan(&rm.ID, &rm.Email, &rm.Name, &rm.Role, &rm.CompanyID, &rm.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &rm, nil
}

func (r *UserRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.UserRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users by company", err)
	}
	defer rows.Close()

	var users []readmodel.UserRM
	for rows.Next() {
		var rm readmodel.UserRM
		if err := rows.Scan(&rm.ID, &rm.Email, &rm.Name, &rm.Role, &rm.CompanyID, &rm.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return users, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user email existence", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, role, company_id, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Name().Value(), u.Role().String(), u.CompanyID(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, name, email string, role user.Role) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET name = $2, email = $3, role = $4, updated_at = now() WHERE id = $1`,
		id, name, email, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
