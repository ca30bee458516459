package handler

import (
	"net/http"

	"github.com/partnerlink/partnerlink/internal/handler/dto"
	"github.com/partnerlink/partnerlink/internal/repository"
	"github.com/partnerlink/partnerlink/internal/service"
)

// handleGetStats returns dashboard counters for a month.
// @Summary Dashboard statistics
// @Description Month total, reservations, follow-ups, work orders by status and the caller's to-do counters
// @Tags stats
// @Produce json
// @Param month query string false "Month as YYYY-MM (default: current month)"
// @Success 200 {object} dto.StatsResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /stats [get]
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	year, month, err := h.parseMonthParam(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	view, err := h.agendaService.MonthView(ctx, user.ID, year, month)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	from, to := service.MonthRange(year, month)
	stats, err := h.statsRepo.GetDashboardStats(ctx, repository.StatsFilters{
		OwnerID: user.ID,
		From:    from,
		To:      to,
	}, h.agendaService.Today())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch dashboard stats")
		return
	}

	respondJSON(w, http.StatusOK, dto.ToStatsResponse(year, month, view.Total, stats))
}
