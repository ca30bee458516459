package handler

import (
	"net/http"

	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/handler/dto"
)

// handleGetCalendar returns per-day counts for a month.
// @Summary Month calendar
// @Description Task counts and reservation markers for every day of a month
// @Tags calendar
// @Produce json
// @Param month query string false "Month as YYYY-MM (default: current month)"
// @Success 200 {object} dto.CalendarResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /calendar [get]
func (h *Handler) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	year, month, err := h.parseMonthParam(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	view, err := h.agendaService.MonthView(r.Context(), user.ID, year, month)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCalendarResponse(view))
}

// handleGetAgenda returns the ordered task list of one day.
// @Summary Day agenda
// @Description Unified tasks of one day, reservations first
// @Tags calendar
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD (default: today)"
// @Success 200 {object} dto.AgendaResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /agenda [get]
func (h *Handler) handleGetAgenda(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	date := h.agendaService.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		date = parsed
	}

	tasks, err := h.agendaService.Day(r.Context(), user.ID, date)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToAgendaResponse(date, tasks))
}
