package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	httperr "github.com/reelshop-lab/reelshop/internal/core/errors"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doRequest(svc *Service, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) httperr.ErrorResponse {
	t.Helper()
	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	return errResp
}

func TestHandleUploadVideo_Created(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().SaveVideo(mock.Anything, mock.Anything).Return(nil).Once()

	resp := doRequest(svc, http.MethodPost, "/v1/videos", `{"caption":"leg day","label":"squat","duration_ms":30000}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	var video v1.Video
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &video))
	require.Equal(t, "id-1", video.ID)
	require.Equal(t, 4, video.BucketID)
	require.Equal(t, "fitness", video.BucketName)
}

func TestHandleUploadVideo_InvalidJSON(t *testing.T) {
	svc, _ := newTestService(t)

	resp := doRequest(svc, http.MethodPost, "/v1/videos", "not json")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, httperr.HttpInvalidJsonError, decodeError(t, resp).ErrorType)
}

func TestHandleUploadVideo_BodyTooLarge(t *testing.T) {
	svc, _ := newTestService(t)
	svc.maxBodyBytes = 16

	resp := doRequest(svc, http.MethodPost, "/v1/videos", `{"caption":"`+strings.Repeat("x", 64)+`"}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	require.Contains(t, decodeError(t, resp).Message, "maximum allowed size")
}

func TestHandleUploadProduct(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, store := newTestService(t)
		store.EXPECT().SaveProduct(mock.Anything, mock.Anything).Return(nil).Once()

		resp := doRequest(svc, http.MethodPost, "/v1/products", `{"title":"Lipstick","category":"beauty"}`)
		require.Equal(t, http.StatusCreated, resp.Code)

		var product v1.Product
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &product))
		require.Equal(t, 1, product.BucketID)
	})

	t.Run("bad category", func(t *testing.T) {
		svc, _ := newTestService(t)

		resp := doRequest(svc, http.MethodPost, "/v1/products", `{"title":"Lipstick","category":"cosmetics"}`)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Equal(t, httperr.HttpInvalidRequestError, decodeError(t, resp).ErrorType)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, store := newTestService(t)
		store.EXPECT().SaveProduct(mock.Anything, mock.Anything).Return(storage.ErrDuplicate).Once()

		resp := doRequest(svc, http.MethodPost, "/v1/products", `{"title":"Lipstick","category":"beauty"}`)
		require.Equal(t, http.StatusConflict, resp.Code)
		require.Equal(t, httperr.HttpDuplicateRecordError, decodeError(t, resp).ErrorType)
	})
}

func TestHandleGetVideo(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().GetVideo(mock.Anything, "vid-1").Return(&v1.Video{ID: "vid-1", BucketID: 2}, nil).Once()
	store.EXPECT().GetVideo(mock.Anything, "missing").Return(nil, storage.ErrNotFound).Once()

	resp := doRequest(svc, http.MethodGet, "/v1/videos/vid-1", "")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doRequest(svc, http.MethodGet, "/v1/videos/missing", "")
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Equal(t, httperr.HttpNotFoundError, decodeError(t, resp).ErrorType)
}

func TestHandleGetProduct(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().GetProduct(mock.Anything, "p-1").Return(&v1.Product{ID: "p-1", Title: "Mug"}, nil).Once()
	store.EXPECT().GetProduct(mock.Anything, "p-2").Return(nil, storage.ErrNotFound).Once()

	resp := doRequest(svc, http.MethodGet, "/v1/products/p-1", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var product v1.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &product))
	require.Equal(t, "Mug", product.Title)

	resp = doRequest(svc, http.MethodGet, "/v1/products/p-2", "")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleVideoFeed(t *testing.T) {
	svc, store := newTestService(t)
	videos := []v1.Video{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}, {ID: "f"}}
	store.EXPECT().ReadVideoCatalog(mock.Anything).Return(videos, nil).Once()

	resp := doRequest(svc, http.MethodGet, "/v1/feed/videos", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Videos []v1.Video `json:"videos"`
		Count  int        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, DefaultFeedCount, body.Count)
	require.Len(t, body.Videos, DefaultFeedCount)
}

func TestHandleVideoFeed_InvalidCount(t *testing.T) {
	svc, _ := newTestService(t)

	for _, count := range []string{"0", "x", "11"} {
		resp := doRequest(svc, http.MethodGet, "/v1/feed/videos?count="+count, "")
		require.Equal(t, http.StatusBadRequest, resp.Code, count)
	}
}

func TestHandleVideoFeed_StoreUnavailable(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().ReadVideoCatalog(mock.Anything).Return(nil, storage.ErrStoreUnavailable).Once()

	resp := doRequest(svc, http.MethodGet, "/v1/feed/videos?count=2", "")
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	require.Equal(t, httperr.HttpStoreUnavailableError, decodeError(t, resp).ErrorType)
}
