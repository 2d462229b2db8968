package usecase

import (
	"github.com/google/uuid"

	"mission-report-srv/internal/savedreport"
	"mission-report-srv/internal/savedreport/repository"
	"mission-report-srv/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	repo  repository.PostgresRepository
	newID func() string
}

// New creates a new saved report UseCase implementation.
func New(l log.Logger, repo repository.PostgresRepository) savedreport.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		newID: uuid.NewString,
	}
}
