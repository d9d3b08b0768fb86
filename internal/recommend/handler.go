package recommend

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	httperr "github.com/reelshop-lab/reelshop/internal/core/errors"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
)

// RegisterRoutes registers the shop recommendation routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/shop/products", s.HandleRecommendProducts)
}

// HandleRecommendProducts handles GET /v1/shop/products?n=20
func (s *Service) HandleRecommendProducts(c *gin.Context) {
	n, err := s.Count(c.Query("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	res, err := s.Recommend(c.Request.Context(), n)
	if err != nil {
		if errors.Is(err, storage.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
				ErrorType: httperr.HttpStoreUnavailableError,
				Message:   "Recommendation data is unavailable",
				Details:   err.Error(),
			})
			return
		}

		slog.Error("[Recommend] Failed to compute recommendations", "error", err, "n", n)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to compute recommendations",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{
		Products:   res.Products,
		Count:      len(res.Products),
		Cached:     res.Cached,
		ComputedAt: res.ComputedAt,
	})
}
