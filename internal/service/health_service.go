package service

import (
	"context"
	"sync/atomic"

	"github.com/CodeZF375/crimsonbot/internal/repository"
)

// HealthService は readiness フラグと DB 疎通をまとめる。
// フラグが OFF の間は DB が生きていても not ready を返す（シャットダウン中のドレイン用）。
type HealthService interface {
	MarkReady()
	MarkNotReady()
	Ready(ctx context.Context) bool
}

type healthService struct {
	repo  repository.HealthRepository
	ready atomic.Bool
}

func NewHealthService(repo repository.HealthRepository) HealthService {
	return &healthService{repo: repo}
}

func (s *healthService) MarkReady() {
	s.ready.Store(true)
}

func (s *healthService) MarkNotReady() {
	s.ready.Store(false)
}

func (s *healthService) Ready(ctx context.Context) bool {
	if !s.ready.Load() {
		return false
	}
	return s.repo.Ping(ctx) == nil
}
