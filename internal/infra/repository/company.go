package repository

import (
	"context"
	"errors"

	"shiftboard/internal/domain/company"
	"shiftboard/internal/domain/user"
	"shiftboard/internal/infra"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CompanyRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, email FROM companies WHERE id = $1`, id)

	var rm readmodel.CompanyRM
	if err := row.Scan(&rm.ID, &rm.Name, &rm.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find company by ID", err)
	}

	return &rm, nil
}

func (r *CompanyRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check company email existence", err)
	}
	return exists, nil
}

// CreateWithManager inserts the company and its first manager atomically so a
// half-registered tenant can never exist.
func (r *CompanyRepository) CreateWithManager(ctx context.Context, c *company.Company, manager *user.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO companies (id, name, email) VALUES ($1, $2, $3)`,
		c.ID(), c.Name(), c.Email().Value())
	if err != nil {
		return infra.WrapRepoErr("failed to create company", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, role, company_id, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		manager.ID(), manager.Email().Value(), manager.PasswordHash(), manager.Name().Value(),
		manager.Role().String(), manager.CompanyID(), manager.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create manager", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit registration", err)
	}
	return nil
}
