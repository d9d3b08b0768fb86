package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	httperr "github.com/reelshop-lab/reelshop/internal/core/errors"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(f *serviceFixture, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	f.svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHandleRecommendProducts_Success(t *testing.T) {
	f := newServiceFixture(t, CacheModeSized)
	f.expectLoads(shopData())

	resp := serve(f, "/v1/shop/products?n=12")
	require.Equal(t, http.StatusOK, resp.Code)

	var body RecommendationResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, 12, body.Count)
	require.Len(t, body.Products, 12)
	require.False(t, body.Cached)
	require.True(t, f.clock.now.Equal(body.ComputedAt))

	resp = serve(f, "/v1/shop/products?n=12")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.True(t, body.Cached)
}

func TestHandleRecommendProducts_DefaultCount(t *testing.T) {
	f := newServiceFixture(t, CacheModeSized)
	f.expectLoads(shopData())

	resp := serve(f, "/v1/shop/products")
	require.Equal(t, http.StatusOK, resp.Code)

	var body RecommendationResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, DefaultCount, body.Count)
}

func TestHandleRecommendProducts_EmptyListIsJSONArray(t *testing.T) {
	f := newServiceFixture(t, CacheModeSized)
	_, videos, products := shopData()
	f.expectLoads(nil, videos, products)

	resp := serve(f, "/v1/shop/products?n=5")
	require.Equal(t, http.StatusOK, resp.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &raw))
	require.JSONEq(t, "[]", string(raw["products"]))
	require.JSONEq(t, "0", string(raw["count"]))
}

func TestHandleRecommendProducts_InvalidCount(t *testing.T) {
	for _, n := range []string{"abc", "0", "-5", "101"} {
		t.Run(n, func(t *testing.T) {
			f := newServiceFixture(t, CacheModeSized)

			resp := serve(f, "/v1/shop/products?n="+n)
			require.Equal(t, http.StatusBadRequest, resp.Code)

			var errResp httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
			require.Equal(t, httperr.HttpInvalidRequestError, errResp.ErrorType)
		})
	}
}

func TestHandleRecommendProducts_StoreUnavailable(t *testing.T) {
	f := newServiceFixture(t, CacheModeSized)
	events, _, _ := shopData()
	f.events.EXPECT().ReadInteractionEvents(mock.Anything).Return(events, nil).Maybe()
	f.catalog.EXPECT().ReadVideoCatalog(mock.Anything).Return(nil, nil).Maybe()
	f.catalog.EXPECT().ReadProductCatalog(mock.Anything).
		Return(nil, fmt.Errorf("%w: query products: connection reset", storage.ErrStoreUnavailable)).
		Once()

	resp := serve(f, "/v1/shop/products?n=5")
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpStoreUnavailableError, errResp.ErrorType)
	require.Contains(t, errResp.Details, "read product catalog")
}

func TestHandleRecommendProducts_UnexpectedError(t *testing.T) {
	f := newServiceFixture(t, CacheModeSized)
	f.events.EXPECT().ReadInteractionEvents(mock.Anything).Return(nil, errors.New("boom")).Once()
	f.catalog.EXPECT().ReadVideoCatalog(mock.Anything).Return(nil, nil).Maybe()
	f.catalog.EXPECT().ReadProductCatalog(mock.Anything).Return(nil, nil).Maybe()

	resp := serve(f, "/v1/shop/products?n=5")
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpInternalError, errResp.ErrorType)
}
