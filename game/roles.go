package game

// assignRoles maps finishing order to roles. First finisher becomes
// President and the last Asshole; with four or more dealt seats the
// second finisher and the second-to-last get the vice roles. Everyone
// else stays Citizen.
func assignRoles(elimination []int, dealtCount int) map[int]Role {
	roles := make(map[int]Role)
	n := len(elimination)
	if n == 0 {
		return roles
	}
	roles[elimination[0]] = RolePresident
	if n > 1 {
		roles[elimination[n-1]] = RoleAsshole
	}
	if dealtCount >= 4 && n >= 4 {
		roles[elimination[1]] = RoleVicePresident
		roles[elimination[n-2]] = RoleViceAsshole
	}
	return roles
}

// exchangeContribution is the fixed number of cards a role surrenders
// during the exchange phase. The contract is symmetric and enforced:
// President and Asshole swap two cards each, the vice pair one each.
func exchangeContribution(r Role) int {
	switch r {
	case RolePresident, RoleAsshole:
		return 2
	case RoleVicePresident, RoleViceAsshole:
		return 1
	}
	return 0
}

// exchangePartner returns the role on the other side of a swap.
func exchangePartner(r Role) (Role, bool) {
	switch r {
	case RolePresident:
		return RoleAsshole, true
	case RoleAsshole:
		return RolePresident, true
	case RoleVicePresident:
		return RoleViceAsshole, true
	case RoleViceAsshole:
		return RoleVicePresident, true
	}
	return RoleCitizen, false
}
