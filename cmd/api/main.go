package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"voice-task-management/config"
	_ "voice-task-management/docs" // Swagger docs
	"voice-task-management/internal/httpserver"
	taskRepo "voice-task-management/internal/task/repository/sqlite"
	taskUC "voice-task-management/internal/task/usecase"
	tgDelivery "voice-task-management/internal/voice/delivery/telegram"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/gcalendar"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/sqlitedb"
	"voice-task-management/pkg/telegram"
	"voice-task-management/pkg/voiceparser"
)

// @title       Voice Task Management API
// @description Turns spoken sentences into tasks with a title, status, priority and due date.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlitedb.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := taskRepo.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	// 4. Transcript interpretation
	periods := datemath.DayPeriods{
		Morning:   cfg.Parser.MorningHour,
		Afternoon: cfg.Parser.AfternoonHour,
		Evening:   cfg.Parser.EveningHour,
		Noon:      cfg.Parser.NoonHour,
	}
	dateMathParser, err := datemath.NewParser(cfg.Parser.Timezone, datemath.WithDayPeriods(periods))
	if err != nil {
		logger.Error(ctx, "Failed to initialize date parser: ", err)
		return
	}

	var primary voiceparser.DatePhraseParser
	if !cfg.Parser.DisablePrimary {
		primary = voiceparser.NewWhenParser(dateMathParser.Location(), periods)
	} else {
		logger.Info(ctx, "Primary date parser disabled, using relative-date rules only")
	}
	interpreter := voiceparser.New(logger, voiceparser.SystemClock(), primary, dateMathParser)
	logger.Infof(ctx, "Transcript interpreter ready (timezone %s)", cfg.Parser.Timezone)

	// 5. Google Calendar (optional)
	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Telegram (optional)
	var telegramBot tgDelivery.Messenger
	if cfg.Telegram.Enabled() {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramBot = bot
		go registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		DateMath:    dateMathParser,
		Calendar:    calendar,
		CalendarConfig: taskUC.CalendarConfig{
			CalendarID:    cfg.GoogleCalendar.CalendarID,
			EventDuration: cfg.GoogleCalendar.EventDuration(),
		},
		Interpreter:    interpreter,
		ParsePerMin:    cfg.RateLimit.ParsePerMin,
		CORS:           cfg.CORS,
		TelegramBot:    telegramBot,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL wins,
// otherwise the public URL of a local ngrok tunnel is used.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, ngrokBackoff)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: set telegram.webhook_url or telegram.ngrok_api")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
