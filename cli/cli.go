// File: tahanansafe/cli/cli.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tahanansafe/services/auth"
	"tahanansafe/services/inbox"
	"tahanansafe/services/incident"
	"tahanansafe/session"
)

// App bundles everything the terminal screens need.
type App struct {
	Auth          auth.Service
	Incidents     incident.Service
	Inbox         inbox.Service
	Sessions      *session.Store
	ResendSeconds int

	In  io.Reader
	Out io.Writer
}

// Run dispatches a subcommand. The returned value is the process exit code.
func (a *App) Run(args []string) int {
	if a.In == nil {
		a.In = os.Stdin
	}
	if a.Out == nil {
		a.Out = os.Stdout
	}

	// Navigating away (Ctrl-C) cancels whatever request is in flight.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if len(args) == 0 {
		a.usage()
		return 2
	}

	var err error
	switch args[0] {
	case "signup":
		err = a.runSignup(ctx)
	case "login":
		err = a.runLogin(ctx)
	case "forgot-password":
		err = a.runForgotPassword(ctx)
	case "logout":
		err = a.runLogout(ctx)
	case "status":
		err = a.runStatus()
	case "report":
		err = a.runReport(ctx)
	case "emergency":
		err = a.runEmergency(ctx)
	case "notifications":
		err = a.runNotifications(ctx, args[1:])
	case "thread":
		err = a.runThread(ctx, args[1:])
	default:
		fmt.Fprintf(a.Out, "unknown command %q\n", args[0])
		a.usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(a.Out, "error: %v\n", err)
		return 1
	}
	return 0
}

func (a *App) usage() {
	fmt.Fprintln(a.Out, `TahananSafe client

Commands:
  signup            create an account (email OTP, profile, security question, PIN)
  login             sign in (email OTP)
  forgot-password   reset a forgotten password
  logout            clear the local session
  status            show login state
  report            file a complaint (with preview and confirmation)
  emergency         file an emergency report (submits immediately)
  notifications     list / manage notifications
  thread <id>       view or reply to a report's thread`)
}

// reader wraps the input stream once per command so prompts share buffering.
func (a *App) reader() *bufio.Reader {
	return bufio.NewReader(a.In)
}

// requirePIN gates authenticated commands behind the device PIN when set.
func (a *App) requirePIN(r *bufio.Reader) error {
	if !a.Sessions.HasPIN() {
		return nil
	}
	for attempts := 0; attempts < 3; attempts++ {
		pin, err := prompt(r, a.Out, "Enter your PIN: ")
		if err != nil {
			return err
		}
		if err := a.Sessions.VerifyPIN(pin); err == nil {
			return nil
		}
		fmt.Fprintln(a.Out, "Incorrect PIN.")
	}
	return fmt.Errorf("too many failed PIN attempts")
}
