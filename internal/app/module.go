package app

import (
	"log/slog"
	"os"

	"github.com/adiwira/authgate/internal/gate"
)

func (a *App) initModules() {
	if err := gate.New(gate.Dependency{
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
		JWT:        a.jwt,
	}); err != nil {
		slog.Error("failed to init module gate", "error", err)
		os.Exit(1)
	}
}
