package storage

import (
	"context"
	"errors"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
)

var (
	// ErrStoreUnavailable wraps any failure to read a backing dataset.
	// An empty dataset is not an error.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound is returned by point lookups when no record matches.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a catalog record with the same id already exists.
	ErrDuplicate = errors.New("record already exists")
)

// InteractionStore persists and returns raw watch events.
type InteractionStore interface {
	// ReadInteractionEvents returns every recorded watch event in append order.
	ReadInteractionEvents(ctx context.Context) ([]v1.WatchEvent, error)

	// AppendInteractionEvent persists one event and returns a handle for the
	// persisted row. No de-duplication or merging is performed.
	AppendInteractionEvent(ctx context.Context, event *v1.WatchEvent) (string, error)
}

// CatalogStore persists and returns video and product records.
type CatalogStore interface {
	ReadVideoCatalog(ctx context.Context) ([]v1.Video, error)
	ReadProductCatalog(ctx context.Context) ([]v1.Product, error)

	SaveVideo(ctx context.Context, video *v1.Video) error
	SaveProduct(ctx context.Context, product *v1.Product) error

	GetVideo(ctx context.Context, videoID string) (*v1.Video, error)
	GetProduct(ctx context.Context, productID string) (*v1.Product, error)
}
