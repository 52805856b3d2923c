package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/adiwira/authgate/internal/pkg/goerror"
	"github.com/adiwira/authgate/internal/pkg/jwt"
)

const (
	IntrospectReasonExpired = "expired"
	IntrospectReasonInvalid = "invalid"
)

type IntrospectInput struct {
	Token string `validate:"required"`
}

type IntrospectOutput struct {
	Active    bool
	Reason    string
	UserID    int64
	UserName  string
	Role      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Introspect verifies a caller-supplied token and reports whether it would be
// accepted by the credential verifier. A rejected token is a normal outcome
// here, not an error: the operation answers "is this token active", it does
// not gate on it. Only expiry is distinguished from the other rejection
// causes; signature and claim failures all report "invalid".
func (s *Usecase) Introspect(ctx context.Context, in IntrospectInput) (*IntrospectOutput, error) {
	ctx, span := s.startSpan(ctx, "Introspect")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.jwt.Verify(in.Token)
	if err != nil {
		reason := IntrospectReasonInvalid
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = IntrospectReasonExpired
		}

		slog.InfoContext(ctx, "introspected token rejected", "reason", reason)
		return &IntrospectOutput{Active: false, Reason: reason}, nil
	}

	out := &IntrospectOutput{
		Active:   true,
		UserID:   clm.UserID,
		UserName: clm.UserName,
		Role:     clm.Role,
		TokenID:  clm.ID,
	}

	if clm.IssuedAt != nil {
		out.IssuedAt = clm.IssuedAt.Time
	}
	if clm.ExpiresAt != nil {
		out.ExpiresAt = clm.ExpiresAt.Time
	}

	return out, nil
}
