package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/repository"
)

// ── export module errors ──

var (
	ErrExportNoAssignments = errors.New("event has no assignments to export")
	ErrExportGenerateFail  = errors.New("generate export file failed")
)

// ExportService produces read-side exports of assignment data.
type ExportService interface {
	// ExportEventAssignments renders all assignments of an event as .xlsx.
	// Returns the file content and a suggested filename.
	ExportEventAssignments(ctx context.Context, eventID string) (*bytes.Buffer, string, error)
	// VolunteerScheduleICS renders the caller's scheduled microtasks in an
	// event as an iCalendar feed.
	VolunteerScheduleICS(ctx context.Context, eventID, userID string) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportEventAssignments ──────────────────────

func (s *exportService) ExportEventAssignments(ctx context.Context, eventID string) (*bytes.Buffer, string, error) {
	ev, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEventNotFound
		}
		s.logger.Error("load event failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, "", err
	}

	assignments, err := s.repo.Assignment.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	// Volunteer display names.
	profiles, err := s.repo.Volunteer.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("list volunteers failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, "", err
	}
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.UserID] = p.UserName
	}

	// Microtask titles and schedules, fetched once per distinct microtask.
	microtasks := make(map[string]*model.Microtask)
	for _, a := range assignments {
		if _, seen := microtasks[a.MicrotaskID]; seen {
			continue
		}
		mt, err := s.repo.Microtask.GetByID(ctx, a.MicrotaskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.logger.Error("load microtask failed", zap.String("microtask_id", a.MicrotaskID), zap.Error(err))
			return nil, "", err
		}
		microtasks[a.MicrotaskID] = mt
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Assignments"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Microtask", "Volunteer", "Status", "Start", "End"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, a := range assignments {
		title := a.MicrotaskID
		start, end := "", ""
		if mt, ok := microtasks[a.MicrotaskID]; ok {
			title = mt.Title
			if mt.StartDateTime != nil {
				start = mt.StartDateTime.Format("2006-01-02 15:04")
			}
			if mt.EndDateTime != nil {
				end = mt.EndDateTime.Format("2006-01-02 15:04")
			}
		}
		name := names[a.UserID]
		if name == "" {
			name = a.UserID
		}

		values := []interface{}{title, name, string(a.Status), start, end}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("assignments_%s.xlsx", ev.EventID)
	return buf, filename, nil
}

// ────────────────────── VolunteerScheduleICS ──────────────────────

func (s *exportService) VolunteerScheduleICS(ctx context.Context, eventID, userID string) (string, error) {
	held, err := s.repo.Assignment.ListActiveByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.String("user_id", userID), zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, a := range held {
		if a.EventID != eventID {
			continue
		}
		mt, err := s.repo.Microtask.GetByID(ctx, a.MicrotaskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.logger.Error("load microtask failed", zap.String("microtask_id", a.MicrotaskID), zap.Error(err))
			return "", err
		}
		// Untimed microtasks have no calendar representation.
		if mt.StartDateTime == nil || mt.EndDateTime == nil {
			continue
		}

		e := cal.AddEvent(a.AssignmentID)
		e.SetDtStampTime(a.AssignedAt)
		e.SetStartAt(*mt.StartDateTime)
		e.SetEndAt(*mt.EndDateTime)
		e.SetSummary(mt.Title)
		e.SetDescription(fmt.Sprintf("Assignment status: %s", a.Status))
	}

	return cal.Serialize(), nil
}
