package handler

import (
	"net/http"

	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/handler/dto"
	"github.com/partnerlink/partnerlink/internal/service"
)

// handleCreateTask creates a manual to-do.
// @Summary Create a manual task
// @Description Creates a to-do owned by the caller. Without due_date the task lands on selected_date, or today.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.ManualTaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.taskService.CreateManualTask(r.Context(), service.CreateManualTaskParams{
		OwnerID:      user.ID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     domain.TaskPriority(req.Priority),
		DueDate:      req.DueDate,
		SelectedDate: req.SelectedDate,
		VendorID:     req.VendorID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToManualTaskResponse(task))
}

// handleGetTask returns a manual task by its unified id.
// @Summary Get a manual task
// @Tags tasks
// @Produce json
// @Param id path string true "Unified task ID, e.g. todo:<uuid>"
// @Success 200 {object} dto.ManualTaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), user.ID, taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToManualTaskResponse(task))
}

// handleToggleTask flips a manual task between pending and completed.
// @Summary Toggle task completion
// @Description Only todo: ids are mutable; work order and contact log ids answer 409.
// @Tags tasks
// @Produce json
// @Param id path string true "Unified task ID, e.g. todo:<uuid>"
// @Success 200 {object} dto.ManualTaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/toggle [post]
func (h *Handler) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTask(r.Context(), user.ID, taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToManualTaskResponse(task))
}

// handleDeleteTask removes a manual task.
// @Summary Delete a manual task
// @Tags tasks
// @Param id path string true "Unified task ID, e.g. todo:<uuid>"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), user.ID, taskID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
