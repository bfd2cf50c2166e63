package ginx

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/admp/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `json:"name" binding:"required"`
}

type echoResponse struct {
	Greeting string `json:"greeting"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/echo", Adapt(func(ctx *gin.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Greeting: "hello " + req.Name}, nil
	}))
	router.POST("/api-error", Adapt(func(ctx *gin.Context, req *echoRequest) (*echoResponse, error) {
		return nil, apierror.ErrMigrationNotFound
	}))
	router.POST("/raw-error", Adapt(func(ctx *gin.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errors.New("boom")
	}))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdapt_Success(t *testing.T) {
	t.Parallel()

	w := doRequest(t, newTestRouter(), "/echo", `{"name":"admp"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"greeting":"hello admp"}`, w.Body.String())
}

func TestAdapt_BindingFailure(t *testing.T) {
	t.Parallel()

	// 缺少 required 字段
	w := doRequest(t, newTestRouter(), "/echo", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdapt_APIError(t *testing.T) {
	t.Parallel()

	w := doRequest(t, newTestRouter(), "/api-error", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"MigrationNotFound"`)
}

func TestAdapt_RawError(t *testing.T) {
	t.Parallel()

	w := doRequest(t, newTestRouter(), "/raw-error", `{"name":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"InternalError"`)
	assert.Contains(t, w.Body.String(), "boom")
}
