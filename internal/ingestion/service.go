package ingestion

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelshop-lab/reelshop/internal/core/httpbody"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
)

// Service accepts watch events and appends them to the interaction log.
type Service struct {
	store        storage.InteractionStore
	maxBodyBytes int64
	nowFn        func() time.Time
}

func NewService(store storage.InteractionStore, maxBodySizeMB int) *Service {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	return &Service{
		store:        store,
		maxBodyBytes: httpbody.MaxBytes(maxBodySizeMB),
		nowFn:        func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes registers the interaction routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/interactions", s.IngestHandler)
}
