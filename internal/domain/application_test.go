package domain_test

import (
	"testing"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"applied to reviewing", domain.StatusApplied, domain.StatusReviewing, true},
		{"applied to shortlisted", domain.StatusApplied, domain.StatusShortlisted, true},
		{"applied straight to rejected", domain.StatusApplied, domain.StatusRejected, true},
		{"reviewing to shortlisted", domain.StatusReviewing, domain.StatusShortlisted, true},
		{"shortlisted to accepted", domain.StatusShortlisted, domain.StatusAccepted, true},
		{"shortlisted to rejected", domain.StatusShortlisted, domain.StatusRejected, true},

		{"no-op transition", domain.StatusReviewing, domain.StatusReviewing, false},
		{"backward to applied", domain.StatusReviewing, domain.StatusApplied, false},
		{"backward from shortlisted", domain.StatusShortlisted, domain.StatusReviewing, false},
		{"out of rejected", domain.StatusRejected, domain.StatusAccepted, false},
		{"out of accepted", domain.StatusAccepted, domain.StatusRejected, false},
		{"unknown from", "PENDING", domain.StatusReviewing, false},
		{"unknown to", domain.StatusApplied, "PENDING", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.CanTransition(tc.from, tc.to))
		})
	}
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, domain.ValidApplicationStatus(domain.StatusApplied))
	assert.True(t, domain.ValidApplicationStatus(domain.StatusAccepted))
	assert.False(t, domain.ValidApplicationStatus("PENDING"))
	assert.False(t, domain.ValidApplicationStatus(""))
}

func TestHasRole(t *testing.T) {
	user := &domain.User{Roles: []string{domain.RoleCandidate, domain.RoleRecruiter}}
	assert.True(t, user.HasRole(domain.RoleCandidate))
	assert.True(t, user.HasRole(domain.RoleRecruiter))
	assert.False(t, user.HasRole(domain.RoleAdmin))
}
