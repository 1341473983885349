package components

import (
	"shiftboard/internal/infra/db"
	"shiftboard/internal/infra/repository"
	"shiftboard/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewCompanyRepository,
			fx.As(new(usecase.CompanyRepository)),
		),
		fx.Annotate(
			repository.NewShiftRepository,
			fx.As(new(usecase.ShiftRepositoryPort)),
		),
		fx.Annotate(
			repository.NewTimesheetRepository,
			fx.As(new(usecase.TimesheetRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
