package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"voice-task-management/config"
	taskUC "voice-task-management/internal/task/usecase"
	tgDelivery "voice-task-management/internal/voice/delivery/telegram"
	voiceUC "voice-task-management/internal/voice/usecase"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Task domain
	dateMath    *datemath.Parser
	calendar    taskUC.Calendar
	calendarCfg taskUC.CalendarConfig

	// Voice domain
	interpreter    voiceUC.Interpreter
	parsePerMin    int
	cors           config.CORSConfig
	telegramBot    tgDelivery.Messenger
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Storage
	DB *sql.DB

	// Task domain. Calendar may be nil.
	DateMath       *datemath.Parser
	Calendar       taskUC.Calendar
	CalendarConfig taskUC.CalendarConfig

	// Voice domain
	Interpreter voiceUC.Interpreter
	ParsePerMin int
	CORS        config.CORSConfig

	// Telegram channel. A nil bot skips the webhook route.
	TelegramBot    tgDelivery.Messenger
	TelegramSecret string
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		dateMath:       cfg.DateMath,
		calendar:       cfg.Calendar,
		calendarCfg:    cfg.CalendarConfig,
		interpreter:    cfg.Interpreter,
		parsePerMin:    cfg.ParsePerMin,
		cors:           cfg.CORS,
		telegramBot:    cfg.TelegramBot,
		telegramSecret: cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	if srv.interpreter == nil {
		return errors.New("interpreter is required")
	}
	return nil
}
