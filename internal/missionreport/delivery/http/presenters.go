package http

import (
	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/response"
)

type updateParametersReq struct {
	Params model.ReportParameters `json:"params"`
}

func (r updateParametersReq) toInput() missionreport.UpdateParametersInput {
	return missionreport.UpdateParametersInput{Params: r.Params}
}

type selectReportReq struct {
	// Empty or null selects the default report.
	SavedReportID string `json:"saved_report_id"`
}

func (r selectReportReq) toInput() missionreport.SelectReportInput {
	return missionreport.SelectReportInput{SavedReportID: r.SavedReportID}
}

type internalGenerateReq struct {
	UserID        string                  `json:"user_id" binding:"required"`
	SavedReportID string                  `json:"saved_report_id"`
	Params        *model.ReportParameters `json:"params"`
}

func (r internalGenerateReq) toInput() missionreport.GenerateRequestInput {
	return missionreport.GenerateRequestInput{
		SavedReportID: r.SavedReportID,
		Params:        r.Params,
	}
}

type reportResp struct {
	ID      string                 `json:"_id,omitempty"`
	Name    string                 `json:"name,omitempty"`
	Report  string                 `json:"report"`
	Params  model.ReportParameters `json:"params"`
	IsDirty bool                   `json:"is_dirty"`
}

type generateResp struct {
	Sequence uint64 `json:"sequence"`
	Status   string `json:"status"`
}

type chartsResp struct {
	Sequence    uint64            `json:"sequence"`
	GeneratedAt response.DateTime `json:"generated_at" swaggertype:"string"`
	Charts      chart.List        `json:"charts"`
}

type exportResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
}

func (h *handler) newReportResp(o missionreport.ReportOutput) reportResp {
	return reportResp{
		ID:      o.Report.ID,
		Name:    o.Report.Name,
		Report:  o.Report.Report,
		Params:  o.Report.Params,
		IsDirty: o.IsDirty,
	}
}

func (h *handler) newGenerateResp(o missionreport.GenerateOutput) generateResp {
	return generateResp{
		Sequence: o.Sequence,
		Status:   o.Status,
	}
}

func (h *handler) newChartsResp(o missionreport.ChartsOutput) chartsResp {
	return chartsResp{
		Sequence:    o.Sequence,
		GeneratedAt: response.DateTime(o.GeneratedAt),
		Charts:      o.Charts,
	}
}

func (h *handler) newExportResp(o missionreport.ExportOutput) exportResp {
	return exportResp{
		DownloadURL: o.DownloadURL,
		ExpiresAt:   o.ExpiresAt.Format(response.DateTimeFormat),
		FileName:    o.FileName,
		FileSize:    o.FileSize,
	}
}
