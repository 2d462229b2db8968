package usecase

import (
	"context"
	"fmt"

	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/discord"
	"mission-report-srv/pkg/log"
)

type logNotifier struct {
	l log.Logger
}

// NewLogNotifier writes generation failures to the service log.
func NewLogNotifier(l log.Logger) missionreport.Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Error(ctx context.Context, sc model.Scope, err error) error {
	n.l.Errorf(ctx, "missionreport.notify: Generation failed for user %s: %v", sc.UserID, err)
	notificationsTotal.WithLabelValues("log").Inc()
	return nil
}

type discordNotifier struct {
	d discord.IDiscord
}

// NewDiscordNotifier posts generation failures to the monitoring webhook.
func NewDiscordNotifier(d discord.IDiscord) missionreport.Notifier {
	return &discordNotifier{d: d}
}

func (n *discordNotifier) Error(ctx context.Context, sc model.Scope, err error) error {
	notificationsTotal.WithLabelValues("discord").Inc()
	return n.d.SendError(ctx, "Mission report generation failed", fmt.Sprintf("User: %s", sc.UserID), err)
}
