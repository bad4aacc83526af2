package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssignRoles(t *testing.T) {
	testCases := []struct {
		name        string
		elimination []int
		dealtCount  int
		expected    map[int]Role
	}{
		{
			// Seat 0 finished first, seat 3 second, seat 1 third, seat 2
			// never emptied its hand.
			name:        "four seats full ladder",
			elimination: []int{0, 3, 1, 2},
			dealtCount:  4,
			expected: map[int]Role{
				0: RolePresident,
				3: RoleVicePresident,
				1: RoleViceAsshole,
				2: RoleAsshole,
			},
		},
		{
			name:        "two seats president and asshole only",
			elimination: []int{1, 0},
			dealtCount:  2,
			expected: map[int]Role{
				1: RolePresident,
				0: RoleAsshole,
			},
		},
		{
			name:        "three seats no vice roles",
			elimination: []int{2, 0, 1},
			dealtCount:  3,
			expected: map[int]Role{
				2: RolePresident,
				1: RoleAsshole,
			},
		},
		{
			name:        "empty elimination",
			elimination: nil,
			dealtCount:  4,
			expected:    map[int]Role{},
		},
	}
	for _, tc := range testCases {
		got := assignRoles(tc.elimination, tc.dealtCount)
		if diff := cmp.Diff(tc.expected, got); diff != "" {
			t.Errorf("%s: role mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestExchangeContract(t *testing.T) {
	if exchangeContribution(RolePresident) != 2 || exchangeContribution(RoleAsshole) != 2 {
		t.Error("president and asshole must each surrender 2 cards")
	}
	if exchangeContribution(RoleVicePresident) != 1 || exchangeContribution(RoleViceAsshole) != 1 {
		t.Error("vice roles must each surrender 1 card")
	}
	if exchangeContribution(RoleCitizen) != 0 {
		t.Error("citizens owe nothing")
	}

	pairs := map[Role]Role{
		RolePresident:     RoleAsshole,
		RoleAsshole:       RolePresident,
		RoleVicePresident: RoleViceAsshole,
		RoleViceAsshole:   RoleVicePresident,
	}
	for role, expected := range pairs {
		partner, ok := exchangePartner(role)
		if !ok || partner != expected {
			t.Errorf("partner of %s: expected %s, got %s ok=%v", role, expected, partner, ok)
		}
	}
	if _, ok := exchangePartner(RoleCitizen); ok {
		t.Error("citizen has no exchange partner")
	}
}
