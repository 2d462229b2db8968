package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
)

func (uc *implUseCase) ResetParameters(ctx context.Context, sc model.Scope) (missionreport.ReportOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return missionreport.ReportOutput{}, err
	}

	s.mu.Lock()
	s.ctrl.InitializeDefaults()
	s.selected = nil
	s.mu.Unlock()

	return uc.output(s), nil
}

func (uc *implUseCase) GetParameters(ctx context.Context, sc model.Scope) (missionreport.ReportOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return missionreport.ReportOutput{}, err
	}

	params, err := s.ctrl.GetCurrentParameters(ctx)
	if err != nil {
		return missionreport.ReportOutput{}, err
	}
	out := uc.output(s)
	out.Report.Params = params
	return out, nil
}

func (uc *implUseCase) UpdateParameters(ctx context.Context, sc model.Scope, input missionreport.UpdateParametersInput) (missionreport.ReportOutput, error) {
	if err := input.Params.Validate(); err != nil {
		uc.l.Warnf(ctx, "missionreport.usecase.UpdateParameters: Invalid params: %v", err)
		return missionreport.ReportOutput{}, fmt.Errorf("%w: %w", missionreport.ErrInvalidParameters, err)
	}

	s, err := uc.session(sc)
	if err != nil {
		return missionreport.ReportOutput{}, err
	}
	s.ctrl.UpdateParameters(input.Params)

	return uc.output(s), nil
}

// SelectReport resolves the selected saved report and hands it to the controller when it
// differs from the previous selection.
func (uc *implUseCase) SelectReport(ctx context.Context, sc model.Scope, input missionreport.SelectReportInput) (missionreport.ReportOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return missionreport.ReportOutput{}, err
	}

	var selected *model.SavedReport
	if input.SavedReportID != "" {
		report, err := uc.savedReportUC.Detail(ctx, sc, input.SavedReportID)
		if errors.Is(err, savedreport.ErrNotFound) {
			return missionreport.ReportOutput{}, missionreport.ErrSavedReportNotFound
		}
		if err != nil {
			uc.l.Errorf(ctx, "missionreport.usecase.SelectReport: Failed to load saved report %s: %v", input.SavedReportID, err)
			return missionreport.ReportOutput{}, err
		}
		selected = &report
	}

	s.mu.Lock()
	if !reflect.DeepEqual(s.selected, selected) {
		s.selected = selected
		s.ctrl.OnExternalReportSelected(selected)
	}
	s.mu.Unlock()

	return uc.output(s), nil
}
