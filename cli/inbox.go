// File: tahanansafe/cli/inbox.go
package cli

import (
	"context"
	"fmt"
	"strings"
)

const defaultNotificationLimit = 20

func (a *App) runNotifications(ctx context.Context, args []string) error {
	r := a.reader()
	if err := a.requirePIN(r); err != nil {
		return err
	}

	action := "list"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "list":
		items, err := a.Inbox.List(ctx, defaultNotificationLimit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(a.Out, "No notifications.")
			return nil
		}
		for _, n := range items {
			marker := " "
			if n.Unread {
				marker = "*"
			}
			fmt.Fprintf(a.Out, "%s [%s] %s: %s (%s)\n",
				marker, n.Type, n.Title, n.Message, n.Time.Format("Jan 2 15:04"))
			if n.IncidentID != "" {
				fmt.Fprintf(a.Out, "    report: %s\n", n.IncidentID)
			}
		}
		return nil
	case "read-all":
		if err := a.Inbox.MarkAllRead(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "All notifications marked read.")
		return nil
	case "clear":
		if err := a.Inbox.ClearAll(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "Notifications cleared.")
		return nil
	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("usage: notifications toggle <id> [read|unread]")
		}
		unread := len(args) > 2 && strings.EqualFold(args[2], "unread")
		return a.Inbox.ToggleRead(ctx, args[1], unread)
	default:
		return fmt.Errorf("unknown notifications action %q", action)
	}
}

func (a *App) runThread(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: thread <report-id>")
	}
	reportID := args[0]

	r := a.reader()
	if err := a.requirePIN(r); err != nil {
		return err
	}

	detail, err := a.Inbox.ReportDetail(ctx, reportID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Report %s (%s): %s\n", detail.ID, detail.Status, detail.Details)

	messages, err := a.Inbox.Thread(ctx, reportID)
	if err != nil {
		return err
	}
	for _, m := range messages {
		fmt.Fprintf(a.Out, "[%s] %s: %s\n", m.CreatedAt.Format("Jan 2 15:04"), m.SenderName, m.Text)
	}

	text, err := prompt(r, a.Out, "Reply (blank to skip): ")
	if err != nil || text == "" {
		return nil
	}
	posted, err := a.Inbox.PostThreadMessage(ctx, reportID, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Sent at %s.\n", posted.CreatedAt.Format("15:04"))
	return nil
}
