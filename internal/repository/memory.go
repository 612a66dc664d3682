package repository

import (
	"context"
	"sync"
	"time"

	"gift-card-checker-service/internal/models"
)

// MemoryRepository keeps submissions in process memory. It backs the "memory"
// store driver and the handler tests; contents are lost on restart.
type MemoryRepository struct {
	mu          sync.RWMutex
	submissions []models.Submission
	nextID      int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(_ context.Context, s *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	s.DateChecked = time.Now().UTC()
	r.submissions = append(r.submissions, *s)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Insertion order is oldest first; callers expect newest first.
	out := make([]models.Submission, 0, len(r.submissions))
	for i := len(r.submissions) - 1; i >= 0; i-- {
		out = append(out, r.submissions[i])
	}
	return out, nil
}

func (r *MemoryRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := int64(len(r.submissions))
	r.submissions = nil
	return deleted, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.submissions)), nil
}

func (r *MemoryRepository) ExistsByCard(_ context.Context, cardNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.submissions {
		if s.InputData == cardNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) DeleteByCard(_ context.Context, cardNumber string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	kept := r.submissions[:0]
	for _, s := range r.submissions {
		if s.InputData == cardNumber {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.submissions = kept
	return deleted, nil
}

func (r *MemoryRepository) Ping(_ context.Context) error {
	return nil
}

func (r *MemoryRepository) Name() string {
	return "memory"
}
