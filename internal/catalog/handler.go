package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httperr "github.com/reelshop-lab/reelshop/internal/core/errors"
	"github.com/reelshop-lab/reelshop/internal/core/httpbody"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPersistFailed  = "Failed to persist record"
)

// catalogError carries the HTTP error shape from helpers back to handlers.
type catalogError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *catalogError) Error() string {
	return e.message
}

// HandleUploadVideo handles POST /v1/videos
func (s *Service) HandleUploadVideo(c *gin.Context) {
	var req VideoUpload
	if err := s.bindBody(c, &req); err != nil {
		writeError(c, err)
		return
	}

	video, err := s.UploadVideo(c.Request.Context(), req)
	if err != nil {
		writeError(c, uploadError(err))
		return
	}
	c.JSON(http.StatusCreated, video)
}

// HandleUploadProduct handles POST /v1/products
func (s *Service) HandleUploadProduct(c *gin.Context) {
	var req ProductUpload
	if err := s.bindBody(c, &req); err != nil {
		writeError(c, err)
		return
	}

	product, err := s.UploadProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, uploadError(err))
		return
	}
	c.JSON(http.StatusCreated, product)
}

// HandleGetVideo handles GET /v1/videos/:video_id
func (s *Service) HandleGetVideo(c *gin.Context) {
	video, err := s.GetVideo(c.Request.Context(), c.Param("video_id"))
	if err != nil {
		writeError(c, lookupError(err, "video"))
		return
	}
	c.JSON(http.StatusOK, video)
}

// HandleGetProduct handles GET /v1/products/:product_id
func (s *Service) HandleGetProduct(c *gin.Context) {
	product, err := s.GetProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		writeError(c, lookupError(err, "product"))
		return
	}
	c.JSON(http.StatusOK, product)
}

// HandleVideoFeed handles GET /v1/feed/videos?count=5
func (s *Service) HandleVideoFeed(c *gin.Context) {
	count := s.feedDefault
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > s.feedMax {
			writeError(c, &catalogError{
				statusCode: http.StatusBadRequest,
				errorType:  httperr.HttpInvalidRequestError,
				message:    "Invalid query parameters",
				details:    map[string]interface{}{"count": "must be an integer between 1 and " + strconv.Itoa(s.feedMax)},
			})
			return
		}
		count = n
	}

	videos, err := s.Feed(c.Request.Context(), count)
	if err != nil {
		writeError(c, lookupError(err, "video feed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// bindBody decodes a size-limited JSON body into dst.
func (s *Service) bindBody(c *gin.Context, dst interface{}) *catalogError {
	size, err := httpbody.BindJSON(c, dst, s.maxBodyBytes)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, httpbody.ErrTooLarge):
		return &catalogError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details:    map[string]interface{}{"max_size_mb": s.maxBodyBytes / (1024 * 1024)},
		}
	case errors.Is(err, httpbody.ErrMalformed):
		slog.Warn("[Catalog] Invalid JSON body received", "error", err, "payload_size", size)
		return &catalogError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	default:
		slog.Error("[Catalog] Failed to read request body", "error", err)
		return &catalogError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}
}

func uploadError(err error) *catalogError {
	switch {
	case errors.Is(err, ErrInvalidUpload):
		return &catalogError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    err.Error(),
		}
	case errors.Is(err, storage.ErrDuplicate):
		return &catalogError{
			statusCode: http.StatusConflict,
			errorType:  httperr.HttpDuplicateRecordError,
			message:    "Record already exists",
		}
	default:
		slog.Error("[Catalog] Failed to persist record", "error", err)
		return &catalogError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}
}

func lookupError(err error, what string) *catalogError {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return &catalogError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpNotFoundError,
			message:    what + " not found",
		}
	case errors.Is(err, storage.ErrStoreUnavailable):
		return &catalogError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpStoreUnavailableError,
			message:    "Catalog is unavailable",
			details:    err.Error(),
		}
	default:
		slog.Error("[Catalog] Lookup failed", "error", err, "what", what)
		return &catalogError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to read " + what,
		}
	}
}

// writeError serializes a catalogError as the JSON HTTP response.
func writeError(c *gin.Context, err *catalogError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
