package middleware

import (
	"voice-task-management/config"
	"voice-task-management/pkg/log"
)

type Middleware struct {
	l    log.Logger
	cors config.CORSConfig
}

func New(l log.Logger, cors config.CORSConfig) Middleware {
	return Middleware{
		l:    l,
		cors: cors,
	}
}
