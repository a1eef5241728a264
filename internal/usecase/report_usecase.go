package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/domain/repository"
	"lab-supply-ledger/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidReportDate = errors.New("invalid date format, use YYYY-MM-DD")
)

type ReportUsecase interface {
	Summarize(ctx context.Context, query *dto.UsageReportQuery) (*dto.UsageReportResponse, error)
	Export(ctx context.Context, query *dto.UsageReportQuery) (*dto.ExportReportResponse, error)
}

type reportUsecase struct {
	log           *logrus.Logger
	requestRepo   repository.RequestRepository
	exportService service.ExportService
	exportDir     string
}

func NewReportUsecase(
	log *logrus.Logger,
	requestRepo repository.RequestRepository,
	exportService service.ExportService,
	exportDir string,
) ReportUsecase {
	return &reportUsecase{
		log:           log,
		requestRepo:   requestRepo,
		exportService: exportService,
		exportDir:     exportDir,
	}
}

// Summarize aggregates all requests in the window into one row per
// material, summing quantities. The window runs from midnight of the
// from-date up to but excluding midnight after the to-date, so the
// to-date covers its entire calendar day. A from-date after the to-date
// simply produces an empty window, no error.
func (u *reportUsecase) Summarize(ctx context.Context, query *dto.UsageReportQuery) (*dto.UsageReportResponse, error) {
	from, err := parseDay(query.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDay(query.To)
	if err != nil {
		return nil, err
	}

	requests, err := u.requestRepo.FindAll(ctx, repository.RequestFilter{
		DoctorID: query.DoctorID,
		From:     from,
		Until:    to.AddDate(0, 0, 1),
	})
	if err != nil {
		u.log.Warnf("Failed to read requests for report: %+v", err)
		return nil, err
	}

	// Group per material id. Two catalogue entries sharing a description
	// stay separate rows rather than silently merging their totals.
	type materialTotal struct {
		materialID  uint
		description string
		total       int
	}
	totals := make(map[uint]*materialTotal)
	for _, request := range requests {
		group, ok := totals[request.MaterialID]
		if !ok {
			group = &materialTotal{
				materialID:  request.MaterialID,
				description: request.Material.Description,
			}
			totals[request.MaterialID] = group
		}
		group.total += request.Quantity
	}

	groups := make([]*materialTotal, 0, len(totals))
	for _, group := range totals {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].description != groups[j].description {
			return groups[i].description < groups[j].description
		}
		return groups[i].materialID < groups[j].materialID
	})

	rows := make([]dto.UsageReportRow, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, dto.UsageReportRow{
			Material: group.description,
			Total:    group.total,
		})
	}

	return &dto.UsageReportResponse{
		From:     query.From,
		To:       query.To,
		DoctorID: query.DoctorID,
		Rows:     rows,
	}, nil
}

// Export summarizes and writes the result to a timestamped spreadsheet
// in the configured export directory.
func (u *reportUsecase) Export(ctx context.Context, query *dto.UsageReportQuery) (*dto.ExportReportResponse, error) {
	report, err := u.Summarize(ctx, query)
	if err != nil {
		return nil, err
	}

	path, err := u.exportService.Export(report.Rows, u.exportDir)
	if err != nil {
		if !errors.Is(err, service.ErrNothingToExport) {
			u.log.Warnf("Failed to export report: %+v", err)
		}
		return nil, err
	}

	return &dto.ExportReportResponse{File: path}, nil
}

func parseDay(value string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidReportDate
	}
	return day, nil
}
