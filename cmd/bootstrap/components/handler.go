package components

import (
	"shiftboard/internal/handler"
	"shiftboard/internal/handler/api"
	"shiftboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCompanyHandler,
		api.NewUserHandler,
		api.NewShiftHandler,
		api.NewTimesheetHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
