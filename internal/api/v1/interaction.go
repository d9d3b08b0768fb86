package v1

import (
	"fmt"
	"time"
)

// WatchEvent is one implicit-feedback signal: a viewer watched part of a video.
// Events are append-only. Multiple events may reference the same video, and
// VideoID is not checked against the catalog at write time.
type WatchEvent struct {
	// VideoID references a Video. It may dangle if the video was never
	// classified or has since been removed; aggregation drops such events.
	VideoID string `json:"video_id"`

	// WatchTimeMS is how long the video was watched, in milliseconds.
	WatchTimeMS int64 `json:"watch_time_ms"`

	// RecordedAt is stamped by the ingestion service, not the client.
	RecordedAt time.Time `json:"recorded_at"`

	// Seq is a monotonic sequence assigned by the store on append.
	Seq int64 `json:"-"`
}

// Validate ensures the event carries a video reference and a sane watch time.
func (e *WatchEvent) Validate() error {
	if e.VideoID == "" {
		return fmt.Errorf("video_id is required")
	}

	if e.WatchTimeMS < 0 {
		return fmt.Errorf("watch_time_ms must be >= 0")
	}

	return nil
}
