package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/dto"
	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/repository"
)

// ── auto-assignment module errors ──

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrNotEventManager = errors.New("only event managers can run auto-assignment")
	ErrTaskNotInEvent  = errors.New("task does not belong to the given event")
	ErrNoVolunteers    = errors.New("no volunteers enrolled in the event")
)

// PlannerService matches pending microtasks to volunteers and commits the
// resulting plan atomically.
type PlannerService interface {
	AutoAssign(ctx context.Context, eventID, taskID, callerID string) (*dto.AutoAssignResponse, error)
}

type plannerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPlannerService creates a PlannerService.
func NewPlannerService(repo *repository.Repository, logger *zap.Logger) PlannerService {
	return &plannerService{repo: repo, logger: logger}
}

// ────────────────────── AutoAssign ──────────────────────
//
// Greedy per-microtask selection. Microtasks are processed sequentially so
// the in-memory workload counter
// reflects selections made earlier in the same pass; volunteers picked for
// one microtask are penalized when scoring the next.

func (s *plannerService) AutoAssign(ctx context.Context, eventID, taskID, callerID string) (*dto.AutoAssignResponse, error) {
	// ── preconditions ──

	ev, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("load event failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	if !ev.IsManager(callerID) {
		return nil, ErrNotEventManager
	}

	task, err := s.repo.Task.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("load task failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}
	if task.EventID != eventID {
		return nil, ErrTaskNotInEvent
	}

	// ── data gathering ──

	pending, err := s.repo.Microtask.ListPendingByTask(ctx, taskID)
	if err != nil {
		s.logger.Error("list pending microtasks failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}
	if len(pending) == 0 {
		return &dto.AutoAssignResponse{AssignedCount: 0, Assignments: []dto.MicrotaskAssignment{}}, nil
	}

	profiles, err := s.repo.Volunteer.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("list volunteers failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrNoVolunteers
	}

	active, err := s.repo.Assignment.ListActiveByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("list active assignments failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}

	// Workload counter, mutated as the pass selects volunteers.
	workload := make(map[string]int, len(profiles))
	for _, a := range active {
		workload[a.UserID]++
	}

	// ── per-microtask selection ──

	var (
		microtaskWrites  []*model.Microtask
		assignmentWrites []*model.Assignment
		results          []dto.MicrotaskAssignment
	)

	for i := range pending {
		mt := &pending[i]

		selected := s.selectVolunteers(ctx, mt, profiles, workload)
		if len(selected) == 0 {
			s.logger.Warn("no eligible volunteer for microtask", zap.String("microtask_id", mt.MicrotaskID))
			continue
		}

		now := time.Now()
		assignedIDs := make(model.StringArray, 0, len(selected))
		resultVolunteers := make([]dto.AssignedVolunteer, 0, len(selected))

		for _, cand := range selected {
			assignedIDs = append(assignedIDs, cand.profile.UserID)
			workload[cand.profile.UserID]++

			assignmentWrites = append(assignmentWrites, &model.Assignment{
				AssignmentID: uuid.New().String(),
				UserID:       cand.profile.UserID,
				MicrotaskID:  mt.MicrotaskID,
				TaskID:       taskID,
				EventID:      eventID,
				Status:       model.StatusAssigned,
				AssignedAt:   now,
			})
			resultVolunteers = append(resultVolunteers, dto.AssignedVolunteer{
				ID:    cand.profile.UserID,
				Name:  cand.profile.UserName,
				Score: cand.score,
			})
		}

		// The commit replaces assignedTo with this pass's selection, so the
		// write can never exceed the microtask's capacity.
		mt.AssignedTo = assignedIDs
		mt.Status = model.StatusAssigned
		microtaskWrites = append(microtaskWrites, mt)

		results = append(results, dto.MicrotaskAssignment{
			MicrotaskID:        mt.MicrotaskID,
			MicrotaskTitle:     mt.Title,
			AssignedVolunteers: resultVolunteers,
		})
	}

	// ── atomic commit ──

	if len(microtaskWrites) > 0 {
		if err := s.repo.Assignment.CommitPlan(ctx, microtaskWrites, assignmentWrites); err != nil {
			s.logger.Error("commit assignment plan failed",
				zap.String("task_id", taskID),
				zap.Int("microtasks", len(microtaskWrites)),
				zap.Error(err),
			)
			return nil, err
		}
		s.logger.Info("auto-assignment committed",
			zap.String("task_id", taskID),
			zap.Int("assigned_count", len(microtaskWrites)),
			zap.Int("assignments", len(assignmentWrites)),
		)
	}

	if results == nil {
		results = []dto.MicrotaskAssignment{}
	}
	return &dto.AutoAssignResponse{AssignedCount: len(microtaskWrites), Assignments: results}, nil
}

type scoredCandidate struct {
	profile *model.VolunteerProfile
	score   int
}

// selectVolunteers scores every eligible volunteer for one microtask and
// returns the top candidates up to the microtask's capacity. Ties break on
// volunteer id ascending so the outcome is deterministic.
func (s *plannerService) selectVolunteers(ctx context.Context, mt *model.Microtask, profiles []model.VolunteerProfile, workload map[string]int) []scoredCandidate {
	candidates := make([]scoredCandidate, 0, len(profiles))

	for i := range profiles {
		v := &profiles[i]

		if mt.AssignedTo.Contains(v.UserID) {
			continue
		}
		if s.hasTimeConflict(ctx, v.UserID, mt.StartDateTime, mt.EndDateTime) {
			continue
		}
		if !isAvailable(v, mt) {
			continue
		}

		candidates = append(candidates, scoredCandidate{
			profile: v,
			score:   compatibilityScore(v, mt, workload[v.UserID]),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].profile.UserID < candidates[j].profile.UserID
	})

	limit := mt.Capacity()
	if len(candidates) < limit {
		limit = len(candidates)
	}
	return candidates[:limit]
}

// hasTimeConflict checks the candidate interval against the microtasks the
// volunteer already actively holds. Fails closed: any lookup failure counts
// as a conflict rather than risking a double-booked volunteer. A missing
// microtask record is an orphan assignment and is skipped.
func (s *plannerService) hasTimeConflict(ctx context.Context, volunteerID string, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}

	held, err := s.repo.Assignment.ListActiveByUser(ctx, volunteerID)
	if err != nil {
		s.logger.Warn("conflict check: list assignments failed, assuming conflict",
			zap.String("user_id", volunteerID),
			zap.Error(err),
		)
		return true
	}

	for _, a := range held {
		mt, err := s.repo.Microtask.GetByID(ctx, a.MicrotaskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.logger.Warn("conflict check: load microtask failed, assuming conflict",
				zap.String("microtask_id", a.MicrotaskID),
				zap.Error(err),
			)
			return true
		}
		if mt.StartDateTime == nil || mt.EndDateTime == nil {
			continue
		}
		if intervalsOverlap(*start, *end, *mt.StartDateTime, *mt.EndDateTime) {
			return true
		}
	}
	return false
}
