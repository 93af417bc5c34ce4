package auth

// Action names a role-gated lifecycle operation. The single permission table
// below is the only place role checks live; handlers and services both
// consult it, so enforcement and UX hints cannot drift apart.
type Action string

const (
	ActionPostDonation   Action = "donation.post"
	ActionClaimDonation  Action = "donation.claim"
	ActionVolunteer      Action = "delivery.volunteer"
	ActionMarkDelivered  Action = "delivery.complete"
	ActionExpireSweep    Action = "donation.expire"
	ActionManageProfiles Action = "profile.manage"
)

// permissions maps each action to the roles allowed to perform it.
// Admin is deliberately absent from interactive lifecycle actions: admins
// administer, they do not post or claim on behalf of others.
var permissions = map[Action]map[Role]bool{
	ActionPostDonation:   {RoleDonor: true},
	ActionClaimDonation:  {RoleNGO: true},
	ActionVolunteer:      {RoleVolunteer: true},
	ActionMarkDelivered:  {RoleVolunteer: true},
	ActionExpireSweep:    {RoleAdmin: true},
	ActionManageProfiles: {RoleAdmin: true},
}

// Can reports whether role may perform action.
func Can(role Role, action Action) bool {
	allowed, ok := permissions[action]
	return ok && allowed[role]
}

// AllowedActions returns the actions role may perform, for UX hinting.
func AllowedActions(role Role) []Action {
	var out []Action
	for action, roles := range permissions {
		if roles[role] {
			out = append(out, action)
		}
	}
	return out
}
