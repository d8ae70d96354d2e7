package wizard

import (
	"context"

	wizardSession "github.com/tyrehub/appointment-service/internal/usecase/wizard_session"
)

type WizardSessionUseCase interface {
	Start(ctx context.Context, rawQuery string) (*wizardSession.Response, error)
	Get(ctx context.Context, sessionID string) (*wizardSession.Response, error)
	Advance(ctx context.Context, sessionID string, req *wizardSession.UpdateRequest) (*wizardSession.Response, error)
	Back(ctx context.Context, sessionID string) (*wizardSession.Response, error)
	Submit(ctx context.Context, sessionID string) (*wizardSession.Response, error)
	Reset(ctx context.Context, sessionID string) (*wizardSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
