package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/seed"
)

func TestLoad_Demo(t *testing.T) {
	f, err := seed.Load("testdata/demo.yaml")
	require.NoError(t, err)

	assert.Len(t, f.Users, 2)
	assert.Len(t, f.Vendors, 2)
	assert.Len(t, f.WorkOrders, 2)
	require.Len(t, f.ContactLogs, 2)
	require.Len(t, f.ManualTasks, 3)

	assert.True(t, f.ContactLogs[0].IsReservation)
	assert.Equal(t, "1250.50", f.ContactLogs[0].QuoteAmount)
	assert.Equal(t, "alice", f.ManualTasks[0].Owner)
	assert.True(t, f.ManualTasks[1].Completed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := seed.Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		is   error
	}{
		{
			name: "bad work order date",
			yaml: "work_orders:\n  - vendor_id: V1\n    date: \"2023-02-29\"\n",
			is:   domain.ErrInvalidDate,
		},
		{
			name: "bad follow-up date",
			yaml: "contact_logs:\n  - vendor_id: V1\n    contact_date: \"2024-03-01\"\n    next_follow_up: \"03/10/2024\"\n",
			is:   domain.ErrInvalidDate,
		},
		{
			name: "blank manual title",
			yaml: "users:\n  - {name: a, token: t}\nmanual_tasks:\n  - {owner: a, title: \"  \"}\n",
			is:   domain.ErrTitleRequired,
		},
		{
			name: "bad priority",
			yaml: "users:\n  - {name: a, token: t}\nmanual_tasks:\n  - {owner: a, title: x, priority: URGENT}\n",
			is:   domain.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestParse_RejectsWithoutKind(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown owner":  "manual_tasks:\n  - {owner: ghost, title: x}\n",
		"vendor id":      "vendors:\n  - {name: Nameless}\n",
		"bad quote":      "contact_logs:\n  - {vendor_id: V1, contact_date: \"2024-03-01\", quote_amount: lots}\n",
		"unknown status": "work_orders:\n  - {vendor_id: V1, date: \"2024-03-01\", status: LOST}\n",
		"not yaml":       "users: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := seed.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
