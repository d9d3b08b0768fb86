package httpbody

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	ErrTooLarge  = errors.New("request body exceeds maximum allowed size")
	ErrMalformed = errors.New("malformed JSON body")
)

// BindJSON reads at most maxBytes of the request body and decodes it into dst.
// It returns the number of bytes read. Oversized bodies fail with ErrTooLarge
// without being decoded; decode failures wrap ErrMalformed.
func BindJSON(c *gin.Context, dst interface{}, maxBytes int64) (int, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
	if err != nil {
		return 0, fmt.Errorf("read request body: %w", err)
	}
	if int64(len(body)) > maxBytes {
		return len(body), ErrTooLarge
	}
	if err := binding.JSON.BindBody(body, dst); err != nil {
		return len(body), fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return len(body), nil
}

// MaxBytes converts a megabyte limit to bytes, treating <= 0 as 1MB.
func MaxBytes(mb int) int64 {
	if mb <= 0 {
		mb = 1
	}
	return int64(mb) * 1024 * 1024
}
