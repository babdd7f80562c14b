package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	localCache "github.com/coder-56/stock-insights/cache"
	"github.com/coder-56/stock-insights/model"
	"github.com/coder-56/stock-insights/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSymbolRouter(t *testing.T, symbolFilePath string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	localCache.SymbolMasterCache.Flush()

	r := gin.New()
	api := r.Group("/api")
	NewSymbolController(service.NewSymbolService(symbolFilePath)).RegisterRoutes(api)
	return r
}

func TestGetSymbols_ReturnsUppercasedList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.csv")
	content := "SYMBOL,NAME OF COMPANY\nreliance,Reliance Industries\nTCS,Tata Consultancy Services\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := newSymbolRouter(t, path)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/symbols", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp model.SymbolsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"RELIANCE", "TCS"}, resp.Symbols)
	assert.Empty(t, resp.Error)
}

func TestGetSymbols_MissingFileIs500WithEmptyList(t *testing.T) {
	r := newSymbolRouter(t, filepath.Join(t.TempDir(), "missing.csv"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/symbols", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp model.SymbolsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Symbols)
	assert.NotNil(t, resp.Symbols)
}
