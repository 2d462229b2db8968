package middleware

import (
	"mission-report-srv/config"
	"mission-report-srv/pkg/jwt"
	"mission-report-srv/pkg/log"
)

type Middleware struct {
	l            log.Logger
	jwtManager   jwt.IManager
	cookieConfig config.CookieConfig
	internalKey  string
}

func New(l log.Logger, jwtManager jwt.IManager, cookieConfig config.CookieConfig, internalKey string) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
	}
}
