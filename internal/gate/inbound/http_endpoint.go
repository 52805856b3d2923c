package inbound

import (
	"time"

	"github.com/adiwira/authgate/internal/gate/usecase"
	"github.com/adiwira/authgate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the authentication gate.
type HTTPEndpoint struct {
	uc uc
}

// Session reports the identity attached to the current request.
func (h *HTTPEndpoint) Session(r *router.Request) (any, error) {
	resp, err := h.uc.Session(r.Context(), usecase.SessionInput{})
	if err != nil {
		return nil, err
	}

	return SessionResponse{
		UserID:     resp.UserID,
		UserName:   resp.UserName,
		Role:       resp.Role,
		TokenID:    resp.TokenID,
		IssuedAt:   resp.IssuedAt,
		ExpiresAt:  resp.ExpiresAt,
		ExpiresIn:  int64(resp.ExpiresIn / time.Second),
		Authorized: true,
	}, nil
}

// Introspect verifies a posted token and reports whether it is active.
func (h *HTTPEndpoint) Introspect(r *router.Request) (any, error) {
	var req IntrospectRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Introspect(r.Context(), usecase.IntrospectInput{Token: req.Token})
	if err != nil {
		return nil, err
	}

	out := IntrospectResponse{
		Active:   resp.Active,
		Reason:   resp.Reason,
		UserID:   resp.UserID,
		UserName: resp.UserName,
		Role:     resp.Role,
		TokenID:  resp.TokenID,
	}

	if !resp.IssuedAt.IsZero() {
		out.IssuedAt = &resp.IssuedAt
	}
	if !resp.ExpiresAt.IsZero() {
		out.ExpiresAt = &resp.ExpiresAt
	}

	return out, nil
}

// Roles reports the role vocabulary and the configured allow-sets.
func (h *HTTPEndpoint) Roles(r *router.Request) (any, error) {
	resp, err := h.uc.Roles(r.Context(), usecase.RolesInput{})
	if err != nil {
		return nil, err
	}

	return RolesResponse{
		Roles:           resp.Roles,
		IntrospectRoles: resp.IntrospectRoles,
	}, nil
}
