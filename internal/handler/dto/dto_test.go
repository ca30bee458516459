package dto_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerlink/partnerlink/internal/agenda"
	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/handler/dto"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrTitleRequired, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fmt.Errorf("create: %w", domain.ErrInvalidDate), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{domain.ErrManualTaskNotFound, http.StatusNotFound, "TASK_NOT_FOUND"},
		{fmt.Errorf("task wo:1 is read-only: %w", domain.ErrToggleNotSupported), http.StatusConflict, "INVALID_OPERATION"},
		{domain.ErrUserInactive, http.StatusUnauthorized, "USER_INACTIVE"},
		{errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		status, code, _ := dto.MapDomainError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}

	_, _, message := dto.MapDomainError(errors.New("secret dsn"))
	assert.Equal(t, "Internal server error", message)
}

func TestToTaskItem(t *testing.T) {
	quote := decimal.RequireFromString("1250.5")
	item := dto.ToTaskItem(domain.UnifiedTask{
		ID:          "log:1",
		SourceType:  domain.SourceReservation,
		Date:        domain.Date{Year: 2024, Month: time.March, Day: 10},
		Time:        "14:00",
		Title:       "預約: Acme",
		QuoteAmount: &quote,
	})

	assert.Equal(t, "2024-03-10", item.Date)
	assert.Equal(t, "RESERVATION", item.SourceType)
	require.NotNil(t, item.QuoteAmount)
	assert.Equal(t, "1250.50", *item.QuoteAmount)
	assert.False(t, item.Mutable)

	manual := dto.ToTaskItem(domain.UnifiedTask{ID: "todo:1", SourceType: domain.SourceManual})
	assert.Nil(t, manual.QuoteAmount)
	assert.True(t, manual.Mutable)
}

func TestToCalendarResponse(t *testing.T) {
	tasks := []domain.UnifiedTask{
		{ID: "wo:1", SourceType: domain.SourceTransaction, Date: domain.Date{Year: 2024, Month: time.February, Day: 29}},
		{ID: "log:1", SourceType: domain.SourceReservation, Date: domain.Date{Year: 2024, Month: time.February, Day: 29}},
	}
	view := agenda.Month(tasks, 2024, time.February)

	resp := dto.ToCalendarResponse(&view)
	assert.Equal(t, "2024-02", resp.Month)
	assert.Equal(t, 29, resp.DaysInMonth)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Days, 29)
	assert.Equal(t, dto.DaySummary{Count: 2, HasReservation: true}, resp.Index["29"])
	assert.Len(t, resp.Index, 1)
	assert.Equal(t, "2024-02-29", resp.Days[28].Date)
}
