package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/minio"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportPrefix    = "mission-report"
	maxSheetName    = 31
)

// ExportCharts writes the caller's latest chart list to an XLSX workbook in object storage
// and returns a presigned download URL.
func (uc *implUseCase) ExportCharts(ctx context.Context, sc model.Scope) (missionreport.ExportOutput, error) {
	charts, err := uc.GetCharts(ctx, sc)
	if err != nil {
		return missionreport.ExportOutput{}, err
	}

	buf, err := buildWorkbook(charts.Charts)
	if err != nil {
		uc.l.Errorf(ctx, "missionreport.usecase.ExportCharts: Failed to build workbook: %v", err)
		return missionreport.ExportOutput{}, missionreport.ErrExportFailed
	}

	generatedAt := charts.GeneratedAt.In(uc.config.Location)
	fileName := fmt.Sprintf("%s_%s.xlsx", model.ReportName, generatedAt.Format("20060102_1504"))
	objectName := fmt.Sprintf("%s/%s/%s.xlsx", exportPrefix, sc.UserID, uuid.NewString())
	size := int64(buf.Len())

	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.config.ExportBucket,
		ObjectName:   objectName,
		OriginalName: fileName,
		Reader:       buf,
		Size:         size,
		ContentType:  xlsxContentType,
		Metadata:     map[string]string{"user-id": sc.UserID, "sequence": fmt.Sprint(charts.Sequence)},
	}); err != nil {
		uc.l.Errorf(ctx, "missionreport.usecase.ExportCharts: Failed to upload %s: %v", objectName, err)
		return missionreport.ExportOutput{}, missionreport.ErrExportFailed
	}

	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ExportBucket,
		ObjectName: objectName,
		Expiry:     uc.config.ExportURLExpiry,
		Filename:   fileName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "missionreport.usecase.ExportCharts: Failed to presign %s: %v", objectName, err)
		return missionreport.ExportOutput{}, missionreport.ErrExportFailed
	}

	return missionreport.ExportOutput{
		DownloadURL: url.URL,
		ExpiresAt:   url.ExpiresAt,
		FileName:    fileName,
		FileSize:    size,
	}, nil
}

// buildWorkbook renders one sheet per config, in list order.
func buildWorkbook(list chart.List) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, cfg := range list.Charts {
		name := sheetName(cfg.ID, i)
		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, name, cfg); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeSheet(f *excelize.File, sheet string, cfg chart.Config) error {
	var rows [][]any
	rows = append(rows, []any{cfg.Title})
	if cfg.Subtitle != "" {
		rows = append(rows, []any{cfg.Subtitle})
	}
	rows = append(rows, []any{})

	if cfg.Type == chart.TypeTable {
		if len(cfg.Headers) > 0 {
			rows = append(rows, toRow(cfg.Headers))
		}
		for _, r := range cfg.Rows {
			rows = append(rows, toRow(r))
		}
	}

	for _, axis := range cfg.Axes {
		tr := cfg.Translations[axis.CategoryField]
		header := []any{firstNonEmpty(tr.Title, axis.CategoryField)}
		for range axis.Series {
			header = append(header, firstNonEmpty(axis.YTitle, axis.XTitle, "Value"))
		}
		rows = append(rows, header)

		for i, category := range axis.Categories {
			row := []any{firstNonEmpty(tr.Names[category], category)}
			for _, s := range axis.Series {
				if i < len(s.Data) {
					row = append(row, s.Data[i])
				} else {
					row = append(row, 0)
				}
			}
			rows = append(rows, row)
		}
		rows = append(rows, []any{})
	}

	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}

func sheetName(id string, i int) string {
	name := strings.TrimPrefix(id, model.ReportName+"_")
	if name == "" {
		name = fmt.Sprintf("sheet_%d", i+1)
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

func toRow(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
