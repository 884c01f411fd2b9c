package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"pgroster/config"
	"pgroster/models"
	"pgroster/services/roster"
	"pgroster/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RosterHandler exposes the roster builder over HTTP. The wrapper is a
// stateless passthrough: every request runs a fresh build.
type RosterHandler struct {
	Service roster.RosterService
	Rules   roster.Rules
	Logger  *zap.Logger
}

func NewRosterHandler(svc roster.RosterService, rules roster.Rules, logger *zap.Logger) *RosterHandler {
	return &RosterHandler{Service: svc, Rules: rules, Logger: logger}
}

// defaults is the meta object echoed alongside every build so the browser
// tool can prefill its form.
func (h *RosterHandler) defaults() gin.H {
	minShifts := len(h.Rules.Sessions)
	outlets := make([]models.QuotaSpec, 0, len(h.Rules.Outlets))
	for _, o := range h.Rules.Outlets {
		outlets = append(outlets, models.QuotaSpec{Outlet: o.Name, Count: o.DefaultQuota})
		minShifts += o.DefaultQuota
	}
	return gin.H{
		"welcomeDay": config.AppConfig.WelcomeDay,
		"onboardDay": config.AppConfig.OnboardDay,
		"elevateDay": config.AppConfig.ElevateDay,
		"minShifts":  minShifts,
		"outlets":    outlets,
	}
}

func (h *RosterHandler) buildFromRequest(c *gin.Context) (*models.RosterResult, bool) {
	var input models.RosterRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return nil, false
	}

	req := roster.BuildRequest{
		Starters:   input.Starters,
		Quotas:     input.Blocks,
		WelcomeDay: config.AppConfig.WelcomeDay,
		OnboardDay: config.AppConfig.OnboardDay,
		ElevateDay: config.AppConfig.ElevateDay,
		Shuffle:    input.Shuffle,
	}
	if input.WelcomeDay != nil {
		req.WelcomeDay = *input.WelcomeDay
	}
	if input.OnboardDay != nil {
		req.OnboardDay = *input.OnboardDay
	}
	if input.ElevateDay != nil {
		req.ElevateDay = *input.ElevateDay
	}
	if input.MinShifts != nil {
		req.MinShifts = *input.MinShifts
	}

	result, err := h.Service.BuildRoster(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return nil, false
	}

	h.Logger.Info("roster built",
		zap.String("runId", result.RunID),
		zap.Int("rows", len(result.Rows)),
		zap.Int("starters", result.Stats.Starters),
		zap.Bool("conflicts", result.Conflicts.Any()),
	)
	return result, true
}

// BuildRosterHandler handles POST /api/roster.
func (h *RosterHandler) BuildRosterHandler(c *gin.Context) {
	result, ok := h.buildFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": result,
		"meta": gin.H{"defaults": h.defaults()},
	})
}

// DefaultsHandler handles GET /api/roster/defaults.
func (h *RosterHandler) DefaultsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"defaults": h.defaults()})
}

// ExportRosterCSVHandler handles POST /api/roster/export: the same build,
// rendered as a CSV download for the supervisor tool.
func (h *RosterHandler) ExportRosterCSVHandler(c *gin.Context) {
	result, ok := h.buildFromRequest(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=roster-%s.csv", result.RunID))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"Starter", "Staff ID", "Date", "Start", "End", "Outlet", "Sequence"})
	for _, row := range result.Rows {
		w.Write([]string{
			row.Starter, row.StaffID, row.Date,
			row.StartTime, row.EndTime, row.Outlet,
			strconv.Itoa(row.Sequence),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		// Headers are already out, so the download is truncated; make that
		// visible in the logs.
		h.Logger.Warn("csv export write failed",
			zap.String("runId", result.RunID), zap.Error(err))
	}
}
