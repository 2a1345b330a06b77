package service

import (
	"context"
	"fmt"
	"time"

	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/CodeZF375/crimsonbot/internal/repository"
)

// EventSink receives committed mutations. Publish must not block the caller for long
// and has no way to fail the mutation.
type EventSink interface {
	Publish(ctx context.Context, event domain.Event)
}

type RecordService[T domain.Entity[T]] interface {
	Category() domain.Category
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	GetByKey(ctx context.Context, key string) (T, error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id int64, payload T) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}

type recordService[T domain.Entity[T]] struct {
	category domain.Category
	repo     repository.RecordRepository[T]
	sink     EventSink
	now      func() time.Time
}

// NewRecordService wires one category. sink may be nil, in which case nothing is published.
func NewRecordService[T domain.Entity[T]](category domain.Category, repo repository.RecordRepository[T], sink EventSink) RecordService[T] {
	return &recordService[T]{
		category: category,
		repo:     repo,
		sink:     sink,
		now:      time.Now,
	}
}

func (s *recordService[T]) Category() domain.Category {
	return s.category
}

func (s *recordService[T]) List(ctx context.Context) ([]T, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.category, err)
	}
	return recs, nil
}

func (s *recordService[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("get %s %d: %w", s.category, id, err)
	}
	if rec == nil {
		return zero, fmt.Errorf("%s %d: %w", s.category, id, domain.ErrNotFound)
	}
	return *rec, nil
}

func (s *recordService[T]) GetByKey(ctx context.Context, key string) (T, error) {
	var zero T
	rec, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("get %s %q: %w", s.category, key, err)
	}
	if rec == nil {
		return zero, fmt.Errorf("%s %q: %w", s.category, key, domain.ErrNotFound)
	}
	return *rec, nil
}

func (s *recordService[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T
	rec := payload.Normalized()
	if err := domain.Validate(rec); err != nil {
		return zero, err
	}

	existing, err := s.repo.GetByKey(ctx, rec.Key())
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.category, err)
	}
	if existing != nil {
		return zero, fmt.Errorf("%s %q: %w", s.category, rec.Key(), domain.ErrConflict)
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.category, err)
	}
	s.publish(ctx, domain.EventCreate, created)
	return created, nil
}

func (s *recordService[T]) Update(ctx context.Context, id int64, payload T) (T, error) {
	var zero T
	rec := payload.Normalized()
	if err := domain.Validate(rec); err != nil {
		return zero, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", s.category, id, err)
	}
	if current == nil {
		return zero, fmt.Errorf("%s %d: %w", s.category, id, domain.ErrNotFound)
	}

	other, err := s.repo.GetByKey(ctx, rec.Key())
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", s.category, id, err)
	}
	if other != nil && (*other).RecordID() != id {
		return zero, fmt.Errorf("%s %q: %w", s.category, rec.Key(), domain.ErrConflict)
	}

	updated, err := s.repo.Update(ctx, id, rec)
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", s.category, id, err)
	}
	// 削除と競合した場合
	if updated == nil {
		return zero, fmt.Errorf("%s %d: %w", s.category, id, domain.ErrNotFound)
	}
	s.publish(ctx, domain.EventUpdate, *updated)
	return *updated, nil
}

func (s *recordService[T]) Delete(ctx context.Context, id int64) (T, error) {
	var zero T
	snapshot, err := s.repo.Delete(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("delete %s %d: %w", s.category, id, err)
	}
	if snapshot == nil {
		return zero, fmt.Errorf("%s %d: %w", s.category, id, domain.ErrNotFound)
	}
	s.publish(ctx, domain.EventDelete, *snapshot)
	return *snapshot, nil
}

func (s *recordService[T]) publish(ctx context.Context, typ domain.EventType, rec T) {
	if s.sink == nil {
		return
	}
	s.sink.Publish(ctx, domain.Event{
		Type:     typ,
		Category: s.category,
		RecordID: rec.RecordID(),
		Key:      rec.Key(),
		Details:  rec.Details(),
		Actor:    domain.ActorFrom(ctx),
		At:       s.now(),
	})
}
