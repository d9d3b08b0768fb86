package memory

import (
	"context"
	"fmt"
	"sync"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
)

// Store is an in-memory implementation of storage.InteractionStore and
// storage.CatalogStore. Useful for testing and local development.
type Store struct {
	mu       sync.RWMutex
	events   []v1.WatchEvent
	videos   []v1.Video
	products []v1.Product
	videoIdx map[string]int
	prodIdx  map[string]int
	seq      int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		videoIdx: make(map[string]int),
		prodIdx:  make(map[string]int),
	}
}

func (s *Store) ReadInteractionEvents(ctx context.Context) ([]v1.WatchEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]v1.WatchEvent, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *Store) AppendInteractionEvent(ctx context.Context, event *v1.WatchEvent) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	event.Seq = s.seq
	s.events = append(s.events, *event)
	return fmt.Sprintf("watch_events/%d", s.seq), nil
}

func (s *Store) ReadVideoCatalog(ctx context.Context) ([]v1.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]v1.Video, len(s.videos))
	copy(out, s.videos)
	return out, nil
}

func (s *Store) ReadProductCatalog(ctx context.Context) ([]v1.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]v1.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) SaveVideo(ctx context.Context, video *v1.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.videoIdx[video.ID]; exists {
		return storage.ErrDuplicate
	}
	s.videoIdx[video.ID] = len(s.videos)
	s.videos = append(s.videos, *video)
	return nil
}

func (s *Store) SaveProduct(ctx context.Context, product *v1.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.prodIdx[product.ID]; exists {
		return storage.ErrDuplicate
	}
	s.prodIdx[product.ID] = len(s.products)
	s.products = append(s.products, *product)
	return nil
}

func (s *Store) GetVideo(ctx context.Context, videoID string) (*v1.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.videoIdx[videoID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	// Return a copy to prevent external modification
	v := s.videos[idx]
	return &v, nil
}

func (s *Store) GetProduct(ctx context.Context, productID string) (*v1.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.prodIdx[productID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	p := s.products[idx]
	return &p, nil
}

// Ping always succeeds; it lets the store stand in for a database health check.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
