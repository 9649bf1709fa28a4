package entity

import (
	"testing"
	"time"

	"ledger/internal/domain/lifecycle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventCode_Status(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		code EventCode
		want EventCodeStatus
	}{
		{
			name: "active before expiry",
			code: EventCode{State: lifecycle.Active(), ExpiresAt: now.Add(time.Minute)},
			want: EventCodeActive,
		},
		{
			name: "active flag past expiry",
			code: EventCode{State: lifecycle.Active(), ExpiresAt: now.Add(-time.Second)},
			want: EventCodeExpired,
		},
		{
			name: "expiry instant is expired",
			code: EventCode{State: lifecycle.Active(), ExpiresAt: now},
			want: EventCodeExpired,
		},
		{
			name: "deactivated",
			code: EventCode{ExpiresAt: now.Add(time.Hour)},
			want: EventCodeSuperseded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Status(now))
			assert.Equal(t, tt.want == EventCodeActive, tt.code.Redeemable(now))
		})
	}
}

func TestNewRatingStats(t *testing.T) {
	assert.Equal(t, RatingStats{}, NewRatingStats(0, 0))
	assert.Equal(t, RatingStats{Count: 3, Average: 4.3}, NewRatingStats(3, 13))
	assert.Equal(t, RatingStats{Count: 2, Average: 4.5}, NewRatingStats(2, 9))
	assert.Equal(t, RatingStats{Count: 3, Average: 1.7}, NewRatingStats(3, 5))
}

func TestLocationKey(t *testing.T) {
	assert.Equal(t, "Spring Field", NormalizeLocation("  Spring   Field "))
	assert.Equal(t, LocationKey("springfield"), LocationKey(" Springfield"))
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("ngo").IsValid())
	assert.True(t, RoleOrganization.SelfAssignable())
	assert.False(t, RoleAdmin.SelfAssignable())

	owner := uuid.New()
	id := Identity{AccountID: owner, Role: RoleOrganization}
	assert.True(t, id.Owns(owner))
	assert.False(t, id.IsAdmin())
}

func TestTaskTemplate_CompletionDocumented(t *testing.T) {
	blank := "  "
	url := "https://example.org/t"

	assert.True(t, (&TaskTemplate{Status: TaskPending}).CompletionDocumented())
	assert.False(t, (&TaskTemplate{Status: TaskCompleted}).CompletionDocumented())
	assert.False(t, (&TaskTemplate{Status: TaskCompleted, Description: &blank}).CompletionDocumented())
	assert.True(t, (&TaskTemplate{Status: TaskCompleted, TemplateURL: &url}).CompletionDocumented())
}
