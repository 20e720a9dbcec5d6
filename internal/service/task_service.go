package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/dto"
	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/repository"
	"github.com/nandoripardo888/TO--DO/pkg/redis"
)

// ── task module errors ──

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrTaskStatusRegression = errors.New("task status regression not allowed")
)

const statsCacheTTL = 30 * time.Second

// TaskService exposes direct task commands and read-side statistics.
type TaskService interface {
	// UpdateStatus advances a task's status; regression is rejected.
	UpdateStatus(ctx context.Context, taskID string, newStatus model.Status) (*dto.TaskStatusResponse, error)
	// GetStatistics counts the task's microtasks per status.
	GetStatistics(ctx context.Context, taskID string) (*dto.TaskStatisticsResponse, error)
}

type taskService struct {
	repo   *repository.Repository
	cache  *redis.Client // nil when redis is unavailable
	logger *zap.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *taskService) UpdateStatus(ctx context.Context, taskID string, newStatus model.Status) (*dto.TaskStatusResponse, error) {
	newRank, ok := model.TaskStatusRank(newStatus)
	if !ok {
		return nil, ErrInvalidTaskStatus
	}

	task, err := s.repo.Task.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("load task failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}

	currentRank, _ := model.TaskStatusRank(task.Status)
	if newRank < currentRank {
		return nil, ErrTaskStatusRegression
	}

	if err := s.repo.Task.UpdateStatus(ctx, taskID, newStatus); err != nil {
		s.logger.Error("update task status failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("task status updated",
		zap.String("task_id", taskID),
		zap.String("status", string(newStatus)),
	)

	return &dto.TaskStatusResponse{TaskID: taskID, Status: string(newStatus)}, nil
}

// ────────────────────── GetStatistics ──────────────────────

func (s *taskService) GetStatistics(ctx context.Context, taskID string) (*dto.TaskStatisticsResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTaskStats(ctx, taskID); err == nil && cached != "" {
			var stats dto.TaskStatisticsResponse
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	if _, err := s.repo.Task.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("load task failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}

	microtasks, err := s.repo.Microtask.ListByTask(ctx, taskID)
	if err != nil {
		s.logger.Error("list microtasks failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}

	stats := &dto.TaskStatisticsResponse{TaskID: taskID, Total: len(microtasks)}
	for _, mt := range microtasks {
		switch mt.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusAssigned:
			stats.Assigned++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
		}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.SetTaskStats(ctx, taskID, string(payload), statsCacheTTL); err != nil {
				s.logger.Warn("cache task statistics failed", zap.String("task_id", taskID), zap.Error(err))
			}
		}
	}

	return stats, nil
}
