package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	coreanalysis "buffettbrain/pkg/core/analysis"

	"github.com/gin-gonic/gin"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(coreanalysis.NewDefaultEngine())
	router := gin.New()
	router.POST("/api/analyze", handler.HandleAnalyze)
	return router
}

func TestHandleAnalyze(t *testing.T) {
	body := `{
		"symbol": "TEST",
		"net_income": 150,
		"shareholder_equity": 1000,
		"free_cash_flow": 180,
		"shares_outstanding": 100,
		"current_price": 12
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	setupRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Symbol   string `json:"symbol"`
		Outcomes []struct {
			Key string `json:"key"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Symbol != "TEST" {
		t.Errorf("Expected symbol TEST, got %s", resp.Symbol)
	}
	if len(resp.Outcomes) != 15 {
		t.Errorf("Expected 15 outcomes, got %d", len(resp.Outcomes))
	}
}

func TestHandleAnalyzeLenientBody(t *testing.T) {
	// Unquoted keys and a trailing comma still decode.
	body := `{symbol: "TEST", net_income: 150,}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	setupRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for lenient body, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandleAnalyzeMissingSymbol(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"net_income": 150}`))
	setupRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without a symbol, got %d", w.Code)
	}
}
