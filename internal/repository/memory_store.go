package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
)

// MemoryInquiryStore is the non-durable fallback used when the primary
// store is unreachable at startup. Ids are timestamp-based. Unlike the
// primary store it is process-local, so access takes a mutex.
type MemoryInquiryStore struct {
	mu     sync.RWMutex
	items  []domain.Inquiry
	lastID int64
}

// NewMemoryInquiryStore builds an empty fallback store.
func NewMemoryInquiryStore() *MemoryInquiryStore {
	return &MemoryInquiryStore{}
}

func (s *MemoryInquiryStore) Create(_ context.Context, inquiry *domain.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	inquiry.ID = strconv.FormatInt(id, 10)
	inquiry.CreatedAt = time.Now().UTC()
	s.items = append(s.items, cloneInquiry(*inquiry))
	return nil
}

func (s *MemoryInquiryStore) List(_ context.Context) ([]domain.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Inquiry, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		result = append(result, cloneInquiry(s.items[i]))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryInquiryStore) GetByID(_ context.Context, id string) (*domain.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			inquiry := cloneInquiry(s.items[i])
			return &inquiry, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryInquiryStore) Update(_ context.Context, inquiry *domain.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == inquiry.ID {
			updated := cloneInquiry(*inquiry)
			updated.CreatedAt = s.items[i].CreatedAt
			s.items[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryInquiryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

func (s *MemoryInquiryStore) Name() string {
	return "memory"
}

func (s *MemoryInquiryStore) Persistent() bool {
	return false
}

// MemoryAdminStore keeps admin accounts in-process. It backs the auth
// flow when running in fallback mode and the service tests.
type MemoryAdminStore struct {
	mu     sync.RWMutex
	items  []domain.Admin
	nextID int64
}

// NewMemoryAdminStore builds an empty admin store.
func NewMemoryAdminStore() *MemoryAdminStore {
	return &MemoryAdminStore{nextID: 1}
}

func (s *MemoryAdminStore) Create(_ context.Context, admin *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Username == admin.Username || s.items[i].Email == admin.Email {
			return ErrDuplicate
		}
	}

	admin.ID = strconv.FormatInt(s.nextID, 10)
	admin.CreatedAt = time.Now().UTC()
	s.nextID++
	s.items = append(s.items, *admin)
	return nil
}

func (s *MemoryAdminStore) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].Email == email {
			admin := s.items[i]
			return &admin, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAdminStore) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			admin := s.items[i]
			return &admin, nil
		}
	}
	return nil, ErrNotFound
}

func cloneInquiry(inquiry domain.Inquiry) domain.Inquiry {
	replies := make([]domain.Reply, len(inquiry.Replies))
	copy(replies, inquiry.Replies)
	inquiry.Replies = replies
	return inquiry
}
