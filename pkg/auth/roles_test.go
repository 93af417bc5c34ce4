package auth

import "testing"

func TestCan(t *testing.T) {
	tests := []struct {
		role    Role
		action  Action
		allowed bool
	}{
		{RoleDonor, ActionPostDonation, true},
		{RoleDonor, ActionClaimDonation, false},
		{RoleDonor, ActionVolunteer, false},
		{RoleDonor, ActionExpireSweep, false},

		{RoleNGO, ActionClaimDonation, true},
		{RoleNGO, ActionPostDonation, false},
		{RoleNGO, ActionVolunteer, false},
		{RoleNGO, ActionMarkDelivered, false},

		{RoleVolunteer, ActionVolunteer, true},
		{RoleVolunteer, ActionMarkDelivered, true},
		{RoleVolunteer, ActionPostDonation, false},
		{RoleVolunteer, ActionClaimDonation, false},

		{RoleAdmin, ActionExpireSweep, true},
		{RoleAdmin, ActionManageProfiles, true},
		{RoleAdmin, ActionPostDonation, false},
		{RoleAdmin, ActionClaimDonation, false},
		{RoleAdmin, ActionVolunteer, false},
	}
	for _, tt := range tests {
		if got := Can(tt.role, tt.action); got != tt.allowed {
			t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.allowed)
		}
	}
}

func TestCan_UnknownInputs(t *testing.T) {
	if Can(Role("superuser"), ActionPostDonation) {
		t.Fatal("unknown role must be denied")
	}
	if Can(RoleDonor, Action("donation.delete")) {
		t.Fatal("unknown action must be denied")
	}
	if Can(Role(""), Action("")) {
		t.Fatal("empty inputs must be denied")
	}
}

func TestAllowedActions(t *testing.T) {
	tests := []struct {
		role Role
		want map[Action]bool
	}{
		{RoleDonor, map[Action]bool{ActionPostDonation: true}},
		{RoleNGO, map[Action]bool{ActionClaimDonation: true}},
		{RoleVolunteer, map[Action]bool{ActionVolunteer: true, ActionMarkDelivered: true}},
		{RoleAdmin, map[Action]bool{ActionExpireSweep: true, ActionManageProfiles: true}},
	}
	for _, tt := range tests {
		got := AllowedActions(tt.role)
		if len(got) != len(tt.want) {
			t.Errorf("AllowedActions(%s) returned %d actions, want %d", tt.role, len(got), len(tt.want))
			continue
		}
		for _, action := range got {
			if !tt.want[action] {
				t.Errorf("AllowedActions(%s) includes unexpected %s", tt.role, action)
			}
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"donor", "ngo", "volunteer", "admin"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", s, err)
		}
		if string(role) != s {
			t.Fatalf("expected %q, got %q", s, role)
		}
	}
	for _, s := range []string{"", "Donor", "receiver", "root"} {
		if _, err := ParseRole(s); err == nil {
			t.Fatalf("expected error for %q, got nil", s)
		}
	}
}
