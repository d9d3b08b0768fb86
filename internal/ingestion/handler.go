package ingestion

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	httperr "github.com/reelshop-lab/reelshop/internal/core/errors"
	"github.com/reelshop-lab/reelshop/internal/core/httpbody"
	"github.com/reelshop-lab/reelshop/internal/metrics"
)

// ingestionError is the HTTP shape of a rejected watch event.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler handles POST /v1/interactions.
func (s *Service) IngestHandler(c *gin.Context) {
	var evt v1.WatchEvent
	size, err := httpbody.BindJSON(c, &evt, s.maxBodyBytes)
	if err != nil {
		writeError(c, s.bodyError(err, size))
		return
	}

	// recorded_at is server time, never the client's
	evt.RecordedAt = s.nowFn()
	evt.Seq = 0

	if err := evt.Validate(); err != nil {
		slog.Warn("[Ingestion] Rejected watch event", "error", err, "video_id", evt.VideoID)
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    err.Error(),
		})
		return
	}

	// One row per call, repeats included.
	location, err := s.store.AppendInteractionEvent(c.Request.Context(), &evt)
	if err != nil {
		slog.Error("[Ingestion] Append failed", "error", err, "video_id", evt.VideoID)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to persist watch event",
		})
		return
	}
	metrics.RecordInteraction()

	slog.Debug("[Ingestion] Watch event recorded",
		"video_id", evt.VideoID,
		"watch_time_ms", evt.WatchTimeMS,
		"location", location,
		"payload_size", size)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "location": location})
}

func (s *Service) bodyError(err error, size int) *ingestionError {
	switch {
	case errors.Is(err, httpbody.ErrTooLarge):
		slog.Warn("[Ingestion] Request body too large", "size", size, "max", s.maxBodyBytes)
		return &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details:    map[string]interface{}{"max_size_mb": s.maxBodyBytes / (1024 * 1024)},
		}
	case errors.Is(err, httpbody.ErrMalformed):
		slog.Warn("[Ingestion] Invalid JSON body", "error", err, "payload_size", size)
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Invalid JSON body",
		}
	default:
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to read request body",
		}
	}
}

func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
