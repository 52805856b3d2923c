package usecase

import (
	"context"

	"github.com/samber/lo"

	"github.com/adiwira/authgate/internal/gate/entity"
	"github.com/adiwira/authgate/internal/pkg/config"
)

// IntrospectRoles resolves the allow-set for the introspection endpoint from
// configuration, defaulting to admin-only when nothing usable is configured.
// It is read once at route registration.
func IntrospectRoles(cfg config.Config) []string {
	if cfg == nil {
		return []string{entity.RoleAdmin.String()}
	}

	roles := cfg.GetArray("gate.introspect_roles")
	if len(roles) == 0 {
		return []string{entity.RoleAdmin.String()}
	}

	return roles
}

type RolesInput struct{}

type RolesOutput struct {
	Roles           []string
	IntrospectRoles []string
}

// Roles reports the known role vocabulary and the allow-set configured for
// the introspection endpoint. The allow-sets themselves are fixed at route
// registration; this is a read-only view for operators.
func (s *Usecase) Roles(ctx context.Context, _ RolesInput) (*RolesOutput, error) {
	_, span := s.startSpan(ctx, "Roles")
	defer span.End()

	return &RolesOutput{
		Roles: lo.Map(entity.Roles(), func(r entity.Role, _ int) string {
			return r.String()
		}),
		IntrospectRoles: IntrospectRoles(s.cfg),
	}, nil
}
