// File: tahanansafe/services/inbox/threads.go
package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"tahanansafe/models"
)

// ReportDetail fetches one submitted report.
func (s *DefaultInboxService) ReportDetail(ctx context.Context, id string) (*models.ReportDetail, error) {
	opt, err := s.bearer()
	if err != nil {
		return nil, err
	}
	raw, err := s.Client.Request(ctx, http.MethodGet, fmt.Sprintf(reportPath, url.PathEscape(id)), nil, opt)
	if err != nil {
		return nil, err
	}
	var detail models.ReportDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &detail, nil
}

// Thread fetches a report's messages in order.
func (s *DefaultInboxService) Thread(ctx context.Context, reportID string) ([]models.ThreadMessage, error) {
	opt, err := s.bearer()
	if err != nil {
		return nil, err
	}
	raw, err := s.Client.Request(ctx, http.MethodGet, fmt.Sprintf(threadsPath, url.PathEscape(reportID)), nil, opt)
	if err != nil {
		return nil, err
	}
	var messages []models.ThreadMessage
	if err := decodeList(raw, &messages, "messages", "threads", "data"); err != nil {
		return nil, fmt.Errorf("failed to parse thread: %w", err)
	}
	return messages, nil
}

// PostThreadMessage appends to a report's thread.
func (s *DefaultInboxService) PostThreadMessage(ctx context.Context, reportID, text string) (*models.ThreadMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message text is required")
	}
	opt, err := s.bearer()
	if err != nil {
		return nil, err
	}
	body := map[string]string{"text": strings.TrimSpace(text)}
	raw, err := s.Client.Request(ctx, http.MethodPost, fmt.Sprintf(threadsPath, url.PathEscape(reportID)), body, opt)
	if err != nil {
		return nil, err
	}
	var message models.ThreadMessage
	if err := json.Unmarshal(raw, &message); err != nil {
		return nil, fmt.Errorf("failed to parse posted message: %w", err)
	}
	return &message, nil
}
