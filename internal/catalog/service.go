package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	"github.com/reelshop-lab/reelshop/internal/core/httpbody"
	"github.com/reelshop-lab/reelshop/internal/core/sampling"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
	"github.com/reelshop-lab/reelshop/internal/metrics"
)

const (
	StatusCompleted      = "completed"
	StatusFailedClassify = "failed_classify"

	DefaultFeedCount    = 5
	DefaultFeedMaxCount = 50
)

// ErrInvalidUpload marks upload payloads that fail validation (HTTP 400).
var ErrInvalidUpload = errors.New("invalid upload")

// VideoUpload is the body of POST /v1/videos. Label is the external
// classifier's top prediction; empty means classification failed.
type VideoUpload struct {
	Caption    string `json:"caption"`
	Label      string `json:"label"`
	DurationMS int64  `json:"duration_ms"`
}

// ProductUpload is the body of POST /v1/products.
type ProductUpload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Options holds the catalog's HTTP-facing limits.
type Options struct {
	FeedDefaultCount int
	FeedMaxCount     int
	MaxBodySizeMB    int
}

// Service owns the video and product catalog write path and lookups.
type Service struct {
	store        storage.CatalogStore
	buckets      *BucketMap
	feedDefault  int
	feedMax      int
	maxBodyBytes int64
	nowFn        func() time.Time
	newID        func() string
}

func NewService(store storage.CatalogStore, buckets *BucketMap, opts Options) *Service {
	if store == nil {
		panic("catalog: store must not be nil")
	}
	if buckets == nil {
		buckets = DefaultBucketMap()
	}
	if opts.FeedDefaultCount <= 0 {
		opts.FeedDefaultCount = DefaultFeedCount
	}
	if opts.FeedMaxCount <= 0 {
		opts.FeedMaxCount = DefaultFeedMaxCount
	}
	return &Service{
		store:        store,
		buckets:      buckets,
		feedDefault:  opts.FeedDefaultCount,
		feedMax:      opts.FeedMaxCount,
		maxBodyBytes: httpbody.MaxBytes(opts.MaxBodySizeMB),
		nowFn:        func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

// RegisterRoutes registers the catalog and feed routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/videos", s.HandleUploadVideo)
	r.GET("/v1/videos/:video_id", s.HandleGetVideo)
	r.POST("/v1/products", s.HandleUploadProduct)
	r.GET("/v1/products/:product_id", s.HandleGetProduct)
	r.GET("/v1/feed/videos", s.HandleVideoFeed)
}

// UploadVideo maps the label to a bucket and stores the video. A video without
// a label is still stored, unmapped, with status failed_classify.
func (s *Service) UploadVideo(ctx context.Context, req VideoUpload) (*v1.Video, error) {
	if req.DurationMS < 0 {
		return nil, fmt.Errorf("%w: duration_ms must be >= 0", ErrInvalidUpload)
	}

	video := &v1.Video{
		ID:         s.newID(),
		BucketID:   v1.UnassignedBucket,
		Label:      normalize(req.Label),
		Caption:    req.Caption,
		DurationMS: req.DurationMS,
		Status:     StatusFailedClassify,
		CreatedAt:  s.nowFn(),
	}
	if video.Label != "" {
		bucket := s.buckets.ForLabel(video.Label)
		video.BucketID = bucket.ID
		video.BucketName = bucket.Name
		video.Status = StatusCompleted
	}

	if err := video.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}
	if err := s.store.SaveVideo(ctx, video); err != nil {
		return nil, fmt.Errorf("save video %s: %w", video.ID, err)
	}

	metrics.RecordUpload("video", video.Status)
	slog.Info("[Catalog] Video stored",
		"video_id", video.ID,
		"label", video.Label,
		"bucket_id", video.BucketID,
		"status", video.Status)
	return video, nil
}

// UploadProduct stores a product under the bucket named by its category.
func (s *Service) UploadProduct(ctx context.Context, req ProductUpload) (*v1.Product, error) {
	bucket, ok := s.buckets.ForCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("%w: category must be one of %v", ErrInvalidUpload, ProductCategories)
	}

	product := &v1.Product{
		ID:          s.newID(),
		BucketID:    bucket.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    bucket.Name,
		CreatedAt:   s.nowFn(),
	}
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}
	if err := s.store.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("save product %s: %w", product.ID, err)
	}

	metrics.RecordUpload("product", StatusCompleted)
	slog.Info("[Catalog] Product stored",
		"product_id", product.ID,
		"category", product.Category,
		"bucket_id", product.BucketID)
	return product, nil
}

func (s *Service) GetVideo(ctx context.Context, videoID string) (*v1.Video, error) {
	return s.store.GetVideo(ctx, videoID)
}

func (s *Service) GetProduct(ctx context.Context, productID string) (*v1.Product, error) {
	return s.store.GetProduct(ctx, productID)
}

// Feed returns a uniform random sample of at most count videos.
func (s *Service) Feed(ctx context.Context, count int) ([]v1.Video, error) {
	videos, err := s.store.ReadVideoCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("read video catalog: %w", err)
	}
	return sampling.Uniform(sampling.NewRand(), videos, count), nil
}
