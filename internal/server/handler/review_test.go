package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/internal/credits"
	"github.com/codepilot/codepilot/internal/review"
	"github.com/codepilot/codepilot/mocks"
)

type handlerFixture struct {
	handler  *ReviewHandler
	store    *mocks.MockStore
	provider *mocks.MockProvider
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	provider := mocks.NewMockProvider(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := credits.NewLedger(store, credits.DefaultCatalog(), logger)
	svc := review.NewService(ledger, provider, store, logger)
	return &handlerFixture{
		handler:  NewReviewHandler(svc, 1<<20, logger),
		store:    store,
		provider: provider,
	}
}

func withCaller(r *http.Request, caller core.Caller) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), callerCtxKey{}, caller))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "nope"},
		{"missing code", `{"language": "go"}`},
		{"missing language", `{"code": "x := 1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			req := httptest.NewRequest(http.MethodPost, "/api/review", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			f.handler.Submit(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeBody(t, rec), "error")
		})
	}
}

func TestSubmitInsufficientCredits(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	f.store.EXPECT().GetUserByID(gomock.Any(), userID).Return(&core.User{ID: userID, Credits: 0}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/review",
		strings.NewReader(`{"code": "var x=1", "language": "javascript"}`))
	req = withCaller(req, core.Authenticated(&core.User{ID: userID}))
	rec := httptest.NewRecorder()

	f.handler.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "Insufficient credits")
}

func TestSubmitSuccessResponseShape(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	pendingID := uuid.New()

	f.store.EXPECT().GetUserByID(gomock.Any(), userID).Return(&core.User{ID: userID, Credits: 5}, nil)
	f.store.EXPECT().DebitCredits(gomock.Any(), userID, 1).Return(4, pendingID, nil)
	gomock.InOrder(
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return("1) Use let\n2) Add semicolon", nil),
		f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return("```js\nlet x = 1;\n```", nil),
	)
	f.store.EXPECT().SaveReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *core.Review) error {
			rec.ID = uuid.New()
			rec.Timestamp = time.Now()
			return nil
		})
	f.store.EXPECT().SettlePendingDebit(gomock.Any(), pendingID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/review",
		strings.NewReader(`{"code": "var x=1", "language": "javascript"}`))
	req = withCaller(req, core.Authenticated(&core.User{ID: userID, Credits: 5}))
	rec := httptest.NewRecorder()

	f.handler.Submit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.NotContains(t, body, "error")
	assert.Equal(t, "1. Use let\n2. Add semicolon", body["review"])
	assert.Equal(t, "let x = 1;", body["correctedCode"])
	assert.Equal(t, float64(4), body["creditsRemaining"])
	assert.NotEmpty(t, body["reviewId"])
}

func TestSubmitServerErrorShape(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	pendingID := uuid.New()

	f.store.EXPECT().GetUserByID(gomock.Any(), userID).Return(&core.User{ID: userID, Credits: 2}, nil)
	f.store.EXPECT().DebitCredits(gomock.Any(), userID, 1).Return(1, pendingID, nil)
	f.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("", core.ErrInference)
	f.store.EXPECT().RefundPendingDebit(gomock.Any(), pendingID).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/review",
		strings.NewReader(`{"code": "var x=1", "language": "javascript"}`))
	req = withCaller(req, core.Authenticated(&core.User{ID: userID, Credits: 2}))
	rec := httptest.NewRecorder()

	f.handler.Submit(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "error")
}

func TestListAll(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().ListReviews(gomock.Any()).Return([]core.Review{
		{ID: uuid.New(), Language: "go"},
		{ID: uuid.New(), Language: "python"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/review", nil)
	rec := httptest.NewRecorder()

	f.handler.ListAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var reviews []core.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 2)
}

func TestListByLanguage(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().ListReviewsByLanguage(gomock.Any(), "go").Return([]core.Review{
		{ID: uuid.New(), Language: "go"},
	}, nil)

	r := chi.NewRouter()
	r.Get("/api/review/language/{language}", f.handler.ListByLanguage)

	req := httptest.NewRequest(http.MethodGet, "/api/review/language/go", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var reviews []core.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "go", reviews[0].Language)
}
