package services

import (
	"context"
	"fmt"
	"strings"

	"wastewise-admin-service/internal/domain"
)

type WorkerInput struct {
	ID     string
	Name   string
	Phone  string
	Email  string
	RoleID string
	Status string
}

func (in WorkerInput) apply(w *domain.Worker) error {
	errs := fieldErrors{}
	w.Name = required(errs, "name", in.Name)
	w.Phone = strings.TrimSpace(in.Phone)
	w.Email = strings.ToLower(required(errs, "email", in.Email))
	w.RoleID = strings.TrimSpace(in.RoleID)
	w.Status = domain.WorkerStatus(strings.TrimSpace(in.Status))
	if w.Status == "" {
		w.Status = domain.WorkerAvailable
	}
	if !w.Status.IsValid() {
		errs.add("status", "must be one of available, occupied, absent")
	}
	return errs.err()
}

func (s *RecordService) ListWorkers(ctx context.Context) ([]*domain.Worker, error) {
	workers, err := s.repos.Workers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	return workers, nil
}

func (s *RecordService) GetWorker(ctx context.Context, id string) (*domain.Worker, error) {
	w, err := s.repos.Workers.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "worker", id)
	}
	return w, nil
}

func (s *RecordService) CreateWorker(ctx context.Context, in WorkerInput) (*domain.Worker, error) {
	w := &domain.Worker{ID: s.idOrNew(in.ID)}
	if err := in.apply(w); err != nil {
		return nil, err
	}
	w.CreatedAt = s.now()
	w.UpdatedAt = w.CreatedAt
	if err := s.repos.Workers.Create(ctx, w); err != nil {
		return nil, repoError(err, "worker", w.ID)
	}
	return w, nil
}

func (s *RecordService) UpdateWorker(ctx context.Context, id string, in WorkerInput) (*domain.Worker, error) {
	w, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(w); err != nil {
		return nil, err
	}
	w.UpdatedAt = s.now()
	if err := s.repos.Workers.Update(ctx, w); err != nil {
		return nil, repoError(err, "worker", id)
	}
	return w, nil
}

func (s *RecordService) DeleteWorker(ctx context.Context, id string) error {
	return repoError(s.repos.Workers.DeleteByID(ctx, id), "worker", id)
}
