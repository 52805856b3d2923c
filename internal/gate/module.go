// Package gate wires the authentication gate module: session reporting,
// token introspection, and the role configuration view.
package gate

import (
	"github.com/adiwira/authgate/internal/gate/inbound"
	"github.com/adiwira/authgate/internal/gate/usecase"
	"github.com/adiwira/authgate/internal/pkg/clock"
	"github.com/adiwira/authgate/internal/pkg/config"
	"github.com/adiwira/authgate/internal/pkg/instrument"
	"github.com/adiwira/authgate/internal/pkg/jwt"
	"github.com/adiwira/authgate/internal/pkg/router"
	"github.com/adiwira/authgate/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Validator:  dep.Validator,
		Config:     dep.Config,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config)

	return nil
}
