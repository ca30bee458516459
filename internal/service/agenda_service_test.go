package service_test

import (
	"context"
	"time"

	"github.com/partnerlink/partnerlink/internal/domain"
)

// seedMarch inserts a mixed set of records around March 2024.
func (s *ServiceTestSuite) seedMarch() {
	s.exec(`
		INSERT INTO work_orders (vendor_id, date, description, status) VALUES
			('V0001', '2024-03-05', 'Fix leak', 'PAID'),
			('V0002', '2024-03-10', 'Rewire panel', 'PENDING'),
			('V9999', '2024-03-10', 'Unknown vendor job', 'APPROVED'),
			('V0001', '2024-02-29', 'Leap day inspection', 'PENDING'),
			('V0001', '2024-04-01', 'April job', 'PENDING')
	`)
	s.exec(`
		INSERT INTO contact_logs (vendor_id, contact_date, note, next_follow_up, is_reservation, reservation_time, quote_amount, location) VALUES
			('V0002', '2024-03-10', 'site visit', NULL, TRUE, '14:00', 1250.50, ''),
			('V0001', '2024-03-01', 'call back', '2024-03-10', FALSE, NULL, NULL, ''),
			('V0001', '2024-02-20', 'both flags', '2024-03-15', TRUE, '09:30', NULL, 'Warehouse B'),
			('V0001', '2024-03-10', 'plain call', NULL, FALSE, NULL, NULL, ''),
			('V0002', '2024-02-28', 'follow into march', '2024-03-01', FALSE, NULL, NULL, '')
	`)
	s.insertManualTask(ownerID, "Prepare contract", strPtr("2024-03-10"))
	s.insertManualTask(otherID, "Someone else's", strPtr("2024-03-10"))
}

// TestDay_OrdersReservationsFirst checks one day end to end.
func (s *ServiceTestSuite) TestDay_OrdersReservationsFirst() {
	s.seedMarch()

	day, err := s.agendaService.Day(context.Background(), ownerID, domain.Date{Year: 2024, Month: time.March, Day: 10})
	s.Require().NoError(err)
	s.Require().Len(day, 5)

	s.Equal(domain.SourceReservation, day[0].SourceType)
	s.Equal("14:00", day[0].Time)
	s.Equal("2 Volt Ave", day[0].Location)
	s.Require().NotNil(day[0].QuoteAmount)
	s.Equal("1250.5", day[0].QuoteAmount.String())

	// Then aggregation order: transactions, follow-ups, manual.
	// Both work orders share a timestamp, so check them by title.
	s.Equal(domain.SourceTransaction, day[1].SourceType)
	s.Equal(domain.SourceTransaction, day[2].SourceType)
	byTitle := map[string]domain.UnifiedTask{day[1].Title: day[1], day[2].Title: day[2]}
	s.Require().Contains(byTitle, "工單: Rewire panel")
	s.False(byTitle["工單: Rewire panel"].IsCompleted)
	s.Equal("Bright Electric", byTitle["工單: Rewire panel"].RelatedPartyName)
	s.Require().Contains(byTitle, "工單: Unknown vendor job")
	s.True(byTitle["工單: Unknown vendor job"].IsCompleted)
	s.Empty(byTitle["工單: Unknown vendor job"].RelatedPartyName, "unknown vendor degrades to blank")
	s.Equal(domain.SourceFollowUp, day[3].SourceType)
	s.Equal("call back", day[3].Subtitle)
	s.Equal(domain.SourceManual, day[4].SourceType)
	s.Equal("Prepare contract", day[4].Title)

	seen := make(map[string]bool)
	for _, task := range day {
		s.False(seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

// TestMonthView_March checks counts, reservation flags and the month total.
func (s *ServiceTestSuite) TestMonthView_March() {
	s.seedMarch()

	view, err := s.agendaService.MonthView(context.Background(), ownerID, 2024, time.March)
	s.Require().NoError(err)
	s.Equal(31, view.DaysInMonth)
	s.Len(view.Days, 31)

	s.Equal(5, view.Index[10].Count)
	s.True(view.Index[10].HasReservation)
	s.Equal(1, view.Index[5].Count)
	s.False(view.Index[5].HasReservation)
	s.Equal(1, view.Index[15].Count)
	s.True(view.Index[15].HasReservation)
	s.Equal(1, view.Index[1].Count)
	s.NotContains(view.Index, 2)

	sum := 0
	for _, summary := range view.Index {
		sum += summary.Count
	}
	s.Equal(view.Total, sum)
	s.Equal(8, view.Total)
}

// TestMonthView_LeapFebruary has a bucket for day 29.
func (s *ServiceTestSuite) TestMonthView_LeapFebruary() {
	s.seedMarch()

	view, err := s.agendaService.MonthView(context.Background(), ownerID, 2024, time.February)
	s.Require().NoError(err)
	s.Equal(29, view.DaysInMonth)
	s.Equal(1, view.Index[29].Count)
	s.Equal(1, view.Total, "march follow-ups logged in february stay in march")
}

// TestMonthView_UndatedManualTask falls on its creation day.
func (s *ServiceTestSuite) TestMonthView_UndatedManualTask() {
	s.exec(`
		INSERT INTO manual_tasks (owner_id, title, created_at)
		VALUES ($1, 'No due date', '2024-03-20T23:30:00Z')
	`, ownerID)

	view, err := s.agendaService.MonthView(context.Background(), ownerID, 2024, time.March)
	s.Require().NoError(err)
	s.Equal(1, view.Index[20].Count)
	s.Equal(1, view.Total)
}

// TestMonthView_InvalidMonth rejects out-of-range months.
func (s *ServiceTestSuite) TestMonthView_InvalidMonth() {
	_, err := s.agendaService.MonthView(context.Background(), ownerID, 2024, time.Month(13))
	s.ErrorIs(err, domain.ErrInvalidDate)
}

// TestDay_ReflectsToggle recomputes completion on the next read.
func (s *ServiceTestSuite) TestDay_ReflectsToggle() {
	ctx := context.Background()
	id := s.insertManualTask(ownerID, "Pay deposit", strPtr("2024-03-11"))
	date := domain.Date{Year: 2024, Month: time.March, Day: 11}

	day, err := s.agendaService.Day(ctx, ownerID, date)
	s.Require().NoError(err)
	s.Require().Len(day, 1)
	s.False(day[0].IsCompleted)

	_, err = s.taskService.ToggleTask(ctx, ownerID, day[0].ID)
	s.Require().NoError(err)

	day, err = s.agendaService.Day(ctx, ownerID, date)
	s.Require().NoError(err)
	s.Require().Len(day, 1)
	s.Equal(domain.ManualTaskIDPrefix+id, day[0].ID)
	s.True(day[0].IsCompleted)
}
