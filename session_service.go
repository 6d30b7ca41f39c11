package boardclient

import (
	"context"
	"strconv"

	"github.com/taskhive/boardclient/session"
)

// sessionService adapts the typed auth endpoints to the session store's
// local interfaces, recording metrics and audit events along the way.
type sessionService struct {
	c *Client
}

func (s sessionService) Login(ctx context.Context, creds session.Credentials) (string, session.User, error) {
	resp, err := s.c.Login(ctx, LoginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		s.c.metrics.Inc(MetricLoginFailure)
		s.c.audit.Emit(ctx, AuditEvent{EventType: EventLoginFailure, Error: err.Error()})
		return "", session.User{}, err
	}
	s.c.metrics.Inc(MetricLoginSuccess)
	s.c.audit.Emit(ctx, AuditEvent{
		EventType: EventLoginSuccess,
		UserID:    strconv.FormatInt(resp.User.ID, 10),
		Success:   true,
	})
	return resp.AccessToken, toSessionUser(resp.User), nil
}

func (s sessionService) Register(ctx context.Context, reg session.Registration) (string, session.User, error) {
	resp, err := s.c.Register(ctx, RegisterRequest{
		Email:    reg.Email,
		Name:     reg.Name,
		Password: reg.Password,
	})
	if err != nil {
		s.c.metrics.Inc(MetricRegisterFailure)
		s.c.audit.Emit(ctx, AuditEvent{EventType: EventRegisterFailure, Error: err.Error()})
		return "", session.User{}, err
	}
	s.c.metrics.Inc(MetricRegisterSuccess)
	s.c.audit.Emit(ctx, AuditEvent{
		EventType: EventRegisterSuccess,
		UserID:    strconv.FormatInt(resp.User.ID, 10),
		Success:   true,
	})
	return resp.AccessToken, toSessionUser(resp.User), nil
}

func (s sessionService) CurrentUser(ctx context.Context) (session.User, error) {
	user, err := s.c.Me(ctx)
	if err != nil {
		s.c.metrics.Inc(MetricFetchUserFailure)
		return session.User{}, err
	}
	return toSessionUser(*user), nil
}

func toSessionUser(u User) session.User {
	return session.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
	}
}
