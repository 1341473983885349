package components

import (
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewSessionResolver,
		usecase.NewAuthUseCase,
		usecase.NewCompanyUseCase,
		usecase.NewUserUseCase,
		usecase.NewShiftUseCase,
		usecase.NewTimesheetUseCase,
	),
)
