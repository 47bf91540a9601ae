package inbox

import (
	"context"
	"errors"

	"tahanansafe/api"
	"tahanansafe/models"
	"tahanansafe/session"
)

// ErrNotAuthenticated is raised locally when no bearer token is present;
// none of these calls is attempted without one.
var ErrNotAuthenticated = errors.New("please login again")

const (
	notificationsPath    = "/api/mobile/v1/notifications/my"
	markAllReadPath      = "/api/mobile/v1/notifications/mark-all-read"
	clearAllPath         = "/api/mobile/v1/notifications/clear"
	notificationReadPath = "/api/mobile/v1/notifications/%s/read"
	reportPath           = "/api/mobile/reports/%s"
	threadsPath          = "/api/mobile/reports/%s/threads"
)

type Service interface {
	List(ctx context.Context, limit int) ([]models.NotificationItem, error)
	MarkAllRead(ctx context.Context) error
	ClearAll(ctx context.Context) error
	ToggleRead(ctx context.Context, id string, unread bool) error
	ReportDetail(ctx context.Context, id string) (*models.ReportDetail, error)
	Thread(ctx context.Context, reportID string) ([]models.ThreadMessage, error)
	PostThreadMessage(ctx context.Context, reportID, text string) (*models.ThreadMessage, error)
}

// DefaultInboxService is the production implementation.
type DefaultInboxService struct {
	Client   *api.Client
	Sessions *session.Store
}

var _ Service = (*DefaultInboxService)(nil)

func (s *DefaultInboxService) bearer() (api.Option, error) {
	token := s.Sessions.AccessToken()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return api.WithBearer(token), nil
}
