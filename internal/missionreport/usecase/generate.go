package usecase

import (
	"context"

	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
)

func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope) (missionreport.GenerateOutput, error) {
	s, err := uc.session(sc)
	if err != nil {
		return missionreport.GenerateOutput{}, err
	}

	gen := s.ctrl.Generate(ctx)
	uc.l.Infof(ctx, "missionreport.usecase.Generate: Started generation %d for user %s", gen.Sequence, sc.UserID)

	return missionreport.GenerateOutput{
		Sequence: gen.Sequence,
		Status:   missionreport.StatusAccepted,
	}, nil
}

func (uc *implUseCase) GenerateRequested(ctx context.Context, sc model.Scope, input missionreport.GenerateRequestInput) (missionreport.GenerateOutput, error) {
	if input.SavedReportID != "" {
		if _, err := uc.SelectReport(ctx, sc, missionreport.SelectReportInput{SavedReportID: input.SavedReportID}); err != nil {
			return missionreport.GenerateOutput{}, err
		}
	}
	if input.Params != nil {
		if _, err := uc.UpdateParameters(ctx, sc, missionreport.UpdateParametersInput{Params: *input.Params}); err != nil {
			return missionreport.GenerateOutput{}, err
		}
	}
	return uc.Generate(ctx, sc)
}
