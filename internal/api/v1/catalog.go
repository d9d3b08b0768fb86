package v1

import (
	"fmt"
	"time"
)

// UnassignedBucket marks a video whose classifier label could not be mapped
// to a commerce bucket. Such videos never contribute preference weight.
const UnassignedBucket = -1

// Video is the catalog record for an uploaded short video.
// It is created once a classifier label has been mapped to a bucket and is
// immutable afterwards.
type Video struct {
	ID         string    `json:"video_id"`
	BucketID   int       `json:"bucket_id"`
	BucketName string    `json:"bucket_name,omitempty"`
	Label      string    `json:"label,omitempty"` // raw classifier label
	Caption    string    `json:"caption,omitempty"`
	DurationMS int64     `json:"duration_ms,omitempty"`
	Status     string    `json:"status,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Mapped reports whether the video has been assigned a bucket.
func (v *Video) Mapped() bool {
	return v.BucketID >= 0
}

// Validate checks the invariants a stored video must satisfy.
func (v *Video) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("video_id is required")
	}
	if v.BucketID < UnassignedBucket {
		return fmt.Errorf("bucket_id must be >= 0 or %d (unassigned)", UnassignedBucket)
	}
	if v.DurationMS < 0 {
		return fmt.Errorf("duration_ms must be >= 0")
	}
	return nil
}

// Product is the catalog record for a shop item.
type Product struct {
	ID          string    `json:"product_id"`
	BucketID    int       `json:"bucket_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the invariants a stored product must satisfy.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product_id is required")
	}
	if p.BucketID < 0 {
		return fmt.Errorf("bucket_id must be >= 0")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
