package inbound

import (
	"context"

	"github.com/adiwira/authgate/internal/gate/usecase"
	"github.com/adiwira/authgate/internal/pkg/config"
	"github.com/adiwira/authgate/internal/pkg/router"
)

type uc interface {
	Session(ctx context.Context, in usecase.SessionInput) (*usecase.SessionOutput, error)
	Introspect(ctx context.Context, in usecase.IntrospectInput) (*usecase.IntrospectOutput, error)
	Roles(ctx context.Context, in usecase.RolesInput) (*usecase.RolesOutput, error)
}

// RegisterHTTPEndpoint mounts the gate routes. Allow-sets are resolved from
// configuration once, here, and stay fixed for the lifetime of the router.
func RegisterHTTPEndpoint(r *router.Router, uc uc, cfg config.Config) {
	end := &HTTPEndpoint{uc: uc}

	// Session report (need authenticated)
	r.GET("/api/v1/gate/session", end.Session)

	// Token introspection and role administration (need authenticated & authorization)
	r.POST("/api/v1/gate/introspect", end.Introspect, router.RequireRoles(usecase.IntrospectRoles(cfg)...))
	r.GET("/api/v1/gate/roles", end.Roles, router.RequireRoles("admin"))
}
