package apply_vacation

import (
	"context"

	applyVacation "github.com/Jelenicat/abeauty/internal/usecase/apply_vacation"
)

type ApplyVacationUseCase interface {
	Execute(ctx context.Context, req *applyVacation.Request) (*applyVacation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
