package apply_shift_template

import (
	"context"

	applyShiftTemplate "github.com/Jelenicat/abeauty/internal/usecase/apply_shift_template"
)

type ApplyShiftTemplateUseCase interface {
	Execute(ctx context.Context, req *applyShiftTemplate.Request) (*applyShiftTemplate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
