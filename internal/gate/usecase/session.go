package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/adiwira/authgate/internal/pkg/goerror"
	"github.com/adiwira/authgate/internal/pkg/jwt"
)

type SessionInput struct{}

type SessionOutput struct {
	UserID    int64
	UserName  string
	Role      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ExpiresIn time.Duration
}

// Session reports the identity attached to the request by the credential
// verifier. The verifier has already rejected unauthenticated and invalid
// requests, so a missing claim here means the route was registered outside
// the protected set.
func (s *Usecase) Session(ctx context.Context, _ SessionInput) (*SessionOutput, error) {
	ctx, span := s.startSpan(ctx, "Session")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		slog.WarnContext(ctx, "session requested without claims in context")
		return nil, goerror.NewUnauthenticated("Authentication required")
	}

	out := &SessionOutput{
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
		out.ExpiresIn = clm.ExpiresAt.Sub(s.clock.Now()).Truncate(time.Second)
	}

	return out, nil
}
