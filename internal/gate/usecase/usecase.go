package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/adiwira/authgate/internal/pkg/clock"
	"github.com/adiwira/authgate/internal/pkg/config"
	"github.com/adiwira/authgate/internal/pkg/instrument"
	"github.com/adiwira/authgate/internal/pkg/jwt"
	"github.com/adiwira/authgate/internal/pkg/validator"
)

// Usecase implements the gate business operations: reporting the
// authenticated session, introspecting arbitrary tokens, and exposing the
// role configuration.
type Usecase struct {
	validator validator.Validator
	cfg       config.Config
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	Validator  validator.Validator
	Config     config.Config
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		validator: dep.Validator,
		cfg:       dep.Config,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("gate.usecase").Start(ctx, name)
}
