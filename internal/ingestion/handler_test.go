package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
	httperr "github.com/reelshop-lab/reelshop/internal/core/errors"
	"github.com/reelshop-lab/reelshop/internal/core/storage/memory"
	storagemocks "github.com/reelshop-lab/reelshop/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var recordedAt = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func newRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc.nowFn = func() time.Time { return recordedAt }
	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func post(r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/interactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestIngestHandler_Success(t *testing.T) {
	mockStore := storagemocks.NewInteractionStore(t)
	mockStore.EXPECT().
		AppendInteractionEvent(mock.Anything, mock.MatchedBy(func(e *v1.WatchEvent) bool {
			return e.VideoID == "vid-1" && e.WatchTimeMS == 4200 && e.RecordedAt.Equal(recordedAt)
		})).
		Return("watch_events/17", nil).
		Once()

	r := newRouter(NewService(mockStore, 1))
	resp := post(r, []byte(`{"video_id":"vid-1","watch_time_ms":4200}`))

	require.Equal(t, http.StatusAccepted, resp.Code)
	var result map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, "accepted", result["status"])
	require.Equal(t, "watch_events/17", result["location"])
}

func TestIngestHandler_ClientRecordedAtIgnored(t *testing.T) {
	mockStore := storagemocks.NewInteractionStore(t)
	mockStore.EXPECT().
		AppendInteractionEvent(mock.Anything, mock.MatchedBy(func(e *v1.WatchEvent) bool {
			return e.RecordedAt.Equal(recordedAt)
		})).
		Return("watch_events/1", nil).
		Once()

	r := newRouter(NewService(mockStore, 1))
	resp := post(r, []byte(`{"video_id":"vid-1","watch_time_ms":1,"recorded_at":"1999-01-01T00:00:00Z"}`))

	require.Equal(t, http.StatusAccepted, resp.Code)
}

func TestIngestHandler_InvalidJSON(t *testing.T) {
	r := newRouter(NewService(storagemocks.NewInteractionStore(t), 1))

	resp := post(r, []byte("not json"))

	require.Equal(t, http.StatusBadRequest, resp.Code)
	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpInvalidJsonError, errResp.ErrorType)
}

func TestIngestHandler_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing video id", body: `{"watch_time_ms":10}`, message: "video_id is required"},
		{name: "negative watch time", body: `{"video_id":"vid-1","watch_time_ms":-5}`, message: "watch_time_ms must be >= 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(NewService(storagemocks.NewInteractionStore(t), 1))

			resp := post(r, []byte(tc.body))

			require.Equal(t, http.StatusBadRequest, resp.Code)
			var errResp httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
			require.Equal(t, httperr.HttpInvalidRequestError, errResp.ErrorType)
			require.Equal(t, tc.message, errResp.Message)
		})
	}
}

func TestIngestHandler_StorageError(t *testing.T) {
	mockStore := storagemocks.NewInteractionStore(t)
	mockStore.EXPECT().
		AppendInteractionEvent(mock.Anything, mock.Anything).
		Return("", errors.New("database connection failed")).
		Once()

	r := newRouter(NewService(mockStore, 1))
	resp := post(r, []byte(`{"video_id":"vid-1","watch_time_ms":10}`))

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpInternalError, errResp.ErrorType)
}

func TestIngestHandler_BodySizeLimit(t *testing.T) {
	svc := NewService(storagemocks.NewInteractionStore(t), 0)
	svc.maxBodyBytes = 10
	r := newRouter(svc)

	resp := post(r, []byte(`{"video_id":"this is definitely more than 10 bytes"}`))

	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Contains(t, errResp.Message, "maximum allowed size")
}

func TestIngestHandler_RepeatedEventsAreNotMerged(t *testing.T) {
	store := memory.NewStore()
	r := newRouter(NewService(store, 1))

	body := []byte(`{"video_id":"vid-1","watch_time_ms":300}`)
	first := post(r, body)
	second := post(r, body)
	require.Equal(t, http.StatusAccepted, first.Code)
	require.Equal(t, http.StatusAccepted, second.Code)
	require.NotEqual(t, first.Body.String(), second.Body.String())

	events, err := store.ReadInteractionEvents(t.Context())
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, recordedAt, events[0].RecordedAt)
}
