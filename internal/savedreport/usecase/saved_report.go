package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/internal/savedreport/repository"
	"mission-report-srv/pkg/paginator"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input savedreport.CreateInput) (model.SavedReport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.SavedReport{}, savedreport.ErrNameRequired
	}
	if err := input.Params.Validate(); err != nil {
		uc.l.Warnf(ctx, "savedreport.usecase.Create: Invalid params: %v", err)
		return model.SavedReport{}, fmt.Errorf("%w: %w", savedreport.ErrInvalidParameters, err)
	}
	if input.IsGlobal && sc.Role != savedreport.RoleAdmin {
		return model.SavedReport{}, savedreport.ErrGlobalNotAllowed
	}

	s, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:          uc.newID(),
		Name:        name,
		Description: input.Description,
		Report:      model.ReportName,
		Params:      input.Params.Clone(),
		UserID:      sc.UserID,
		IsGlobal:    input.IsGlobal,
	})
	if err != nil {
		uc.l.Errorf(ctx, "savedreport.usecase.Create: Failed to create: %v", err)
		return model.SavedReport{}, err
	}
	return s, nil
}

// Detail returns a saved report the caller owns or that is shared globally.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.SavedReport, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.SavedReport{}, savedreport.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "savedreport.usecase.Detail: Failed to get %s: %v", id, err)
		return model.SavedReport{}, err
	}
	if !s.IsGlobal && s.UserID != sc.UserID {
		return model.SavedReport{}, savedreport.ErrNotFound
	}
	return s, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input savedreport.ListInput) (savedreport.ListOutput, error) {
	input.Paginate.Adjust()
	opts := repository.ListOptions{
		Report:        model.ReportName,
		UserID:        sc.UserID,
		IncludeGlobal: input.IncludeGlobal,
		Limit:         input.Paginate.Limit,
		Offset:        input.Paginate.Offset(),
	}

	var (
		items []model.SavedReport
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.repo.List(gctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "savedreport.usecase.List: Failed to list: %v", err)
		return savedreport.ListOutput{}, err
	}

	return savedreport.ListOutput{
		Reports: items,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(items)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
	}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input savedreport.UpdateInput) (model.SavedReport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.SavedReport{}, savedreport.ErrNameRequired
	}
	if err := input.Params.Validate(); err != nil {
		uc.l.Warnf(ctx, "savedreport.usecase.Update: Invalid params: %v", err)
		return model.SavedReport{}, fmt.Errorf("%w: %w", savedreport.ErrInvalidParameters, err)
	}

	existing, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return model.SavedReport{}, err
	}
	if err := uc.checkWritable(sc, existing); err != nil {
		return model.SavedReport{}, err
	}
	if input.IsGlobal && !existing.IsGlobal && sc.Role != savedreport.RoleAdmin {
		return model.SavedReport{}, savedreport.ErrGlobalNotAllowed
	}

	s, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:          input.ID,
		Name:        name,
		Description: input.Description,
		Params:      input.Params.Clone(),
		IsGlobal:    input.IsGlobal,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.SavedReport{}, savedreport.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "savedreport.usecase.Update: Failed to update %s: %v", input.ID, err)
		return model.SavedReport{}, err
	}
	return s, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := uc.checkWritable(sc, existing); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return savedreport.ErrNotFound
		}
		uc.l.Errorf(ctx, "savedreport.usecase.Delete: Failed to delete %s: %v", id, err)
		return err
	}
	return nil
}

// checkWritable allows owners, and administrators on global reports.
func (uc *implUseCase) checkWritable(sc model.Scope, s model.SavedReport) error {
	if s.UserID == sc.UserID {
		return nil
	}
	if s.IsGlobal && sc.Role == savedreport.RoleAdmin {
		return nil
	}
	return savedreport.ErrForbidden
}
