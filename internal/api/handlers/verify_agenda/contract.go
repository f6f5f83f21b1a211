package verify_agenda

import (
	"context"

	verifyAgenda "github.com/m04kA/SMC-AvailabilityService/internal/usecase/verify_agenda"
)

type VerifyAgendaUseCase interface {
	Execute(ctx context.Context, req *verifyAgenda.Request) (*verifyAgenda.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
