package handler

import (
	"net/http"

	"github.com/ffc/club/api/internal/service"
)

// DashboardHandler serves the derived read views: dashboard, roster,
// and schedule
type DashboardHandler struct {
	dashboardService *service.DashboardService
	scheduleService  *service.ScheduleService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, scheduleService *service.ScheduleService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		scheduleService:  scheduleService,
	}
}

// Dashboard handles GET /v1/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.dashboardService.Snapshot(r.Context()))
}

// Players handles GET /v1/players
func (h *DashboardHandler) Players(w http.ResponseWriter, r *http.Request) {
	players, err := h.dashboardService.Roster(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, players)
}

// Schedule handles GET /v1/schedule
func (h *DashboardHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.scheduleService.Build(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, schedule)
}
