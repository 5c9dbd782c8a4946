// Package report serves the HTML rendering of a verdict.
package report

import (
	"io"
	"net/http"

	coreanalysis "buffettbrain/pkg/core/analysis"
	corereport "buffettbrain/pkg/core/report"
	"buffettbrain/pkg/core/snapshot"
	"buffettbrain/pkg/core/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler renders analysis reports as HTML.
type Handler struct {
	engine *coreanalysis.Engine
}

// NewHandler wires a handler to an engine.
func NewHandler(engine *coreanalysis.Engine) *Handler {
	return &Handler{engine: engine}
}

// HandleReport accepts a financial snapshot and responds with the
// rendered HTML report.
func (h *Handler) HandleReport(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var snap snapshot.FinancialSnapshot
	if _, err := utils.SmartParse(string(body), &snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is not a valid snapshot"})
		return
	}
	if snap.Symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	rep, err := h.engine.Analyze(&snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	html, err := corereport.HTML(rep)
	if err != nil {
		zap.L().Error("report rendering failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report rendering failed"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
