package http

import (
	"mission-report-srv/internal/middleware"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/pkg/discord"
	"mission-report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      savedreport.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc savedreport.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
