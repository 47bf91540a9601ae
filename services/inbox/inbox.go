// File: tahanansafe/services/inbox/inbox.go
package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tahanansafe/models"
)

// List fetches the caller's notifications, newest first.
func (s *DefaultInboxService) List(ctx context.Context, limit int) ([]models.NotificationItem, error) {
	opt, err := s.bearer()
	if err != nil {
		return nil, err
	}
	path := notificationsPath
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	raw, err := s.Client.Request(ctx, http.MethodGet, path, nil, opt)
	if err != nil {
		return nil, err
	}
	var items []models.NotificationItem
	if err := decodeList(raw, &items, "notifications", "data"); err != nil {
		return nil, fmt.Errorf("failed to parse notifications: %w", err)
	}
	return items, nil
}

// MarkAllRead marks every notification as read.
func (s *DefaultInboxService) MarkAllRead(ctx context.Context) error {
	opt, err := s.bearer()
	if err != nil {
		return err
	}
	_, err = s.Client.Request(ctx, http.MethodPost, markAllReadPath, nil, opt)
	return err
}

// ClearAll deletes every notification.
func (s *DefaultInboxService) ClearAll(ctx context.Context) error {
	opt, err := s.bearer()
	if err != nil {
		return err
	}
	_, err = s.Client.Request(ctx, http.MethodDelete, clearAllPath, nil, opt)
	return err
}

// ToggleRead flips a single notification's unread flag.
func (s *DefaultInboxService) ToggleRead(ctx context.Context, id string, unread bool) error {
	opt, err := s.bearer()
	if err != nil {
		return err
	}
	body := map[string]bool{"unread": unread}
	_, err = s.Client.Request(ctx, http.MethodPatch, fmt.Sprintf(notificationReadPath, url.PathEscape(id)), body, opt)
	return err
}

// decodeList parses either a bare JSON array or an object wrapping the array
// under one of the given keys. Backend builds differ on this.
func decodeList(raw json.RawMessage, out any, keys ...string) error {
	if err := json.Unmarshal(raw, out); err == nil {
		return nil
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return err
	}
	for _, key := range keys {
		if inner, ok := wrapper[key]; ok {
			return json.Unmarshal(inner, out)
		}
	}
	return fmt.Errorf("no list found under %v", keys)
}
