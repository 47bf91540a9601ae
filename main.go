// File: tahanansafe/main.go
package main

import (
	"os"
	"time"

	"tahanansafe/api"
	"tahanansafe/cli"
	"tahanansafe/config"
	"tahanansafe/services/auth"
	"tahanansafe/services/inbox"
	"tahanansafe/services/incident"
	"tahanansafe/session"
	"tahanansafe/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	sessions, err := session.Open(config.AppConfig.DataDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open session store: %v", err)
	}

	client := api.New(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.RequestTimeoutSec)*time.Second,
		config.AppConfig.MaxRequestsPerMin,
	)

	authService := &auth.DefaultAuthService{Client: client, Sessions: sessions}
	incidentService := &incident.DefaultIncidentService{Client: client, Sessions: sessions}
	inboxService := &inbox.DefaultInboxService{Client: client, Sessions: sessions}

	app := &cli.App{
		Auth:          authService,
		Incidents:     incidentService,
		Inbox:         inboxService,
		Sessions:      sessions,
		ResendSeconds: config.AppConfig.OTPResendSeconds,
	}
	os.Exit(app.Run(os.Args[1:]))
}
