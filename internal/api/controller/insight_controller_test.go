package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rody-huancas/expense-tracker-api/internal/infrastructure/llm"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"github.com/rody-huancas/expense-tracker-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.calls++
	return s.response, s.err
}

type stubRepo struct {
	records []model.ExpenseRecord
}

func (s *stubRepo) Create(ctx context.Context, r *model.ExpenseRecord) error { return nil }
func (s *stubRepo) GetByID(ctx context.Context, id string) (*model.ExpenseRecord, error) {
	return nil, errors.New("not found")
}
func (s *stubRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.ExpenseRecord, error) {
	return s.records, nil
}
func (s *stubRepo) ListAllByUser(ctx context.Context, userID string) ([]model.ExpenseRecord, error) {
	return s.records, nil
}
func (s *stubRepo) ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]model.ExpenseRecord, error) {
	return s.records, nil
}
func (s *stubRepo) Delete(ctx context.Context, id string) error { return nil }

func setupInsightRouter(provider *stubProvider, repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewInsightService(provider, repo, 30, 50)
	ctrl := NewInsightController(svc)

	r := gin.New()
	// 测试里跳过 JWT，直接注入 userID
	r.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	r.POST("/insights", ctrl.Generate)
	r.POST("/insights/answer", ctrl.Answer)
	r.POST("/categories/suggest", ctrl.SuggestCategory)
	return r
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doPost(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// 模型挂了接口也必须 200 并返回兜底内容，这是产品层面的约定
func TestGenerateEndpoint_ModelDownStill200(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	repo := &stubRepo{records: []model.ExpenseRecord{{ID: "r1", UserID: "u1", Amount: 1, CreatedAt: time.Now()}}}
	r := setupInsightRouter(provider, repo)

	w, env := doPost(t, r, "/insights", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)

	var insights []model.AIInsight
	require.NoError(t, json.Unmarshal(env.Data, &insights))
	require.Len(t, insights, 1)
	assert.Equal(t, model.InsightTypeWarning, insights[0].Type)
}

func TestAnswerEndpoint_RequiresQuestion(t *testing.T) {
	r := setupInsightRouter(&stubProvider{response: "ok"}, &stubRepo{})

	w, _ := doPost(t, r, "/insights/answer", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doPost(t, r, "/insights/answer", `{"question":"我花了多少？"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp AnswerResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "ok", resp.Answer)
}

func TestSuggestCategoryEndpoint(t *testing.T) {
	provider := &stubProvider{response: "Food"}
	r := setupInsightRouter(provider, &stubRepo{})

	w, env := doPost(t, r, "/categories/suggest", `{"description":"星巴克拿铁"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuggestCategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "Food", resp.Category)
	assert.Empty(t, resp.Error)
	assert.Equal(t, 1, provider.calls)
}
