// Package analysis exposes the checklist engine over HTTP.
package analysis

import (
	"io"
	"net/http"

	coreanalysis "buffettbrain/pkg/core/analysis"
	"buffettbrain/pkg/core/snapshot"
	"buffettbrain/pkg/core/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves analysis requests against a shared engine. The engine
// is stateless, so one handler serves all requests concurrently.
type Handler struct {
	engine *coreanalysis.Engine
}

// NewHandler wires a handler to an engine.
func NewHandler(engine *coreanalysis.Engine) *Handler {
	return &Handler{engine: engine}
}

// HandleAnalyze accepts a financial snapshot and responds with the full
// verdict report. The body is parsed leniently: strict JSON first, then
// repaired JSON, then Hjson.
func (h *Handler) HandleAnalyze(c *gin.Context) {
	snap, ok := h.decodeSnapshot(c)
	if !ok {
		return
	}

	rep, err := h.engine.Analyze(snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	zap.L().Info("analysis complete",
		zap.String("symbol", rep.Symbol),
		zap.String("tier", string(rep.Recommendation.Tier)),
		zap.Int("passed", rep.Recommendation.Passed),
		zap.Int("indeterminate", rep.Recommendation.Indeterminate))

	c.JSON(http.StatusOK, rep)
}

func (h *Handler) decodeSnapshot(c *gin.Context) (*snapshot.FinancialSnapshot, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil, false
	}

	var snap snapshot.FinancialSnapshot
	if _, err := utils.SmartParse(string(body), &snap); err != nil {
		zap.L().Warn("snapshot decode failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is not a valid snapshot"})
		return nil, false
	}
	if snap.Symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return nil, false
	}
	return &snap, true
}
