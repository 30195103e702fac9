package repository

import (
	"adaptive_learning_backend/internal/model"
	"sync"
)

// AutonomyLogRepository 有界事件日志，最新在前，超出容量时淘汰最旧事件。
// 单写者（模拟定时器），读取方为HTTP请求，用读写锁保护。
type AutonomyLogRepository struct {
	mu       sync.RWMutex
	events   []model.AutonomyEvent
	capacity int
}

func NewAutonomyLogRepository(capacity int) *AutonomyLogRepository {
	if capacity <= 0 {
		capacity = 30
	}
	return &AutonomyLogRepository{
		events:   make([]model.AutonomyEvent, 0, capacity),
		capacity: capacity,
	}
}

func (r *AutonomyLogRepository) Append(event model.AutonomyEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append([]model.AutonomyEvent{event}, r.events...)
	if len(r.events) > r.capacity {
		r.events = r.events[:r.capacity]
	}
}

// Snapshot 最新在前的事件副本
func (r *AutonomyLogRepository) Snapshot() []model.AutonomyEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.AutonomyEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *AutonomyLogRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

func (r *AutonomyLogRepository) Capacity() int {
	return r.capacity
}
