package inbound

import "time"

type SessionResponse struct {
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	Role       string    `json:"role"`
	TokenID    string    `json:"token_id"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	ExpiresIn  int64     `json:"expires_in_seconds"`
	Authorized bool      `json:"authorized"`
}

type IntrospectRequest struct {
	Token string `json:"token"`
}

type IntrospectResponse struct {
	Active    bool       `json:"active"`
	Reason    string     `json:"reason,omitempty"`
	UserID    int64      `json:"user_id,omitempty"`
	UserName  string     `json:"user_name,omitempty"`
	Role      string     `json:"role,omitempty"`
	TokenID   string     `json:"token_id,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type RolesResponse struct {
	Roles           []string `json:"roles"`
	IntrospectRoles []string `json:"introspect_roles"`
}
