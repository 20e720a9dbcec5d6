package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/nandoripardo888/TO--DO/internal/model"
	"github.com/nandoripardo888/TO--DO/internal/repository"
)

// In-memory repository fakes shared by the service tests. Slices keep
// insertion order so planner runs are deterministic; err fields inject
// failures per method.

type statusWrite struct {
	id     string
	status model.Status
}

// ── event ──

type fakeEventRepo struct {
	events map[string]*model.Event
	err    error
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	ev, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ev, nil
}

// ── task ──

type fakeTaskRepo struct {
	tasks     map[string]*model.Task
	getErr    error
	updateErr error
	writes    []statusWrite
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*model.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	task, ok := f.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return task, nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id string, status model.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if task, ok := f.tasks[id]; ok {
		task.Status = status
	}
	f.writes = append(f.writes, statusWrite{id: id, status: status})
	return nil
}

// ── microtask ──

type fakeMicrotaskRepo struct {
	microtasks []*model.Microtask
	getErr     error
	listErr    error
	updateErr  error
	writes     []statusWrite
}

func (f *fakeMicrotaskRepo) GetByID(_ context.Context, id string) (*model.Microtask, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, mt := range f.microtasks {
		if mt.MicrotaskID == id {
			return mt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMicrotaskRepo) ListByTask(_ context.Context, taskID string) ([]model.Microtask, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Microtask
	for _, mt := range f.microtasks {
		if mt.TaskID == taskID {
			out = append(out, *mt)
		}
	}
	return out, nil
}

func (f *fakeMicrotaskRepo) ListPendingByTask(_ context.Context, taskID string) ([]model.Microtask, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Microtask
	for _, mt := range f.microtasks {
		if mt.TaskID == taskID && mt.Status == model.StatusPending {
			out = append(out, *mt)
		}
	}
	return out, nil
}

func (f *fakeMicrotaskRepo) UpdateStatus(_ context.Context, id string, status model.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, mt := range f.microtasks {
		if mt.MicrotaskID == id {
			mt.Status = status
		}
	}
	f.writes = append(f.writes, statusWrite{id: id, status: status})
	return nil
}

// ── assignment ──

type fakeAssignmentRepo struct {
	assignments []*model.Assignment

	listByMicrotaskErr  error
	listActiveByUserErr error
	listActiveByEvtErr  error
	listByEventErr      error
	updateErr           error
	commitErr           error

	writes               []statusWrite
	committedMicrotasks  []*model.Microtask
	committedAssignments []*model.Assignment
}

func (f *fakeAssignmentRepo) GetByMicrotaskAndUser(_ context.Context, microtaskID, userID string) (*model.Assignment, error) {
	for _, a := range f.assignments {
		if a.MicrotaskID == microtaskID && a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssignmentRepo) ListByMicrotask(_ context.Context, microtaskID string) ([]model.Assignment, error) {
	if f.listByMicrotaskErr != nil {
		return nil, f.listByMicrotaskErr
	}
	var out []model.Assignment
	for _, a := range f.assignments {
		if a.MicrotaskID == microtaskID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListActiveByUser(_ context.Context, userID string) ([]model.Assignment, error) {
	if f.listActiveByUserErr != nil {
		return nil, f.listActiveByUserErr
	}
	var out []model.Assignment
	for _, a := range f.assignments {
		if a.UserID == userID && a.IsActive() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListActiveByEvent(_ context.Context, eventID string) ([]model.Assignment, error) {
	if f.listActiveByEvtErr != nil {
		return nil, f.listActiveByEvtErr
	}
	var out []model.Assignment
	for _, a := range f.assignments {
		if a.EventID == eventID && a.IsActive() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListByEvent(_ context.Context, eventID string) ([]model.Assignment, error) {
	if f.listByEventErr != nil {
		return nil, f.listByEventErr
	}
	var out []model.Assignment
	for _, a := range f.assignments {
		if a.EventID == eventID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) UpdateStatus(_ context.Context, id string, status model.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, a := range f.assignments {
		if a.AssignmentID == id {
			a.Status = status
		}
	}
	f.writes = append(f.writes, statusWrite{id: id, status: status})
	return nil
}

func (f *fakeAssignmentRepo) CommitPlan(_ context.Context, microtasks []*model.Microtask, assignments []*model.Assignment) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committedMicrotasks = append(f.committedMicrotasks, microtasks...)
	f.committedAssignments = append(f.committedAssignments, assignments...)
	f.assignments = append(f.assignments, assignments...)
	return nil
}

// ── volunteer ──

type fakeVolunteerRepo struct {
	profiles []model.VolunteerProfile
	err      error
}

func (f *fakeVolunteerRepo) ListByEvent(_ context.Context, eventID string) ([]model.VolunteerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.VolunteerProfile
	for _, p := range f.profiles {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ── wiring ──

type fakes struct {
	event      *fakeEventRepo
	task       *fakeTaskRepo
	microtask  *fakeMicrotaskRepo
	assignment *fakeAssignmentRepo
	volunteer  *fakeVolunteerRepo
}

func newTestRepo() (*repository.Repository, *fakes) {
	f := &fakes{
		event:      &fakeEventRepo{events: map[string]*model.Event{}},
		task:       &fakeTaskRepo{tasks: map[string]*model.Task{}},
		microtask:  &fakeMicrotaskRepo{},
		assignment: &fakeAssignmentRepo{},
		volunteer:  &fakeVolunteerRepo{},
	}
	repo := &repository.Repository{
		Event:      f.event,
		Task:       f.task,
		Microtask:  f.microtask,
		Assignment: f.assignment,
		Volunteer:  f.volunteer,
	}
	return repo, f
}
