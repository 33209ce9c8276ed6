package entities

// Authorization policy. Ownership short-circuits before role: a requester's
// own tasks are always fully actionable, whatever their role.

// CanView reports whether the requester may see the task at all. A boss sees
// every task; a clerk sees their own tasks and any boss-owned task.
func (r Requester) CanView(t *Task) bool {
	if t.UserID == r.ID {
		return true
	}
	switch r.Role {
	case RoleBoss:
		return true
	case RoleClerk:
		return t.OwnerRole == RoleBoss
	default:
		return false
	}
}

// CanToggle reports whether the requester may change the task's completion
// state. Toggle permission coincides with visibility: every task a user can
// see, they can complete.
func (r Requester) CanToggle(t *Task) bool {
	return r.CanView(t)
}

// CanReorder reports whether the requester may change the task's manual
// order. Stricter than CanToggle: a clerk may reorder only their own tasks,
// even for boss-owned tasks they are allowed to toggle.
func (r Requester) CanReorder(t *Task) bool {
	if t.UserID == r.ID {
		return true
	}
	switch r.Role {
	case RoleBoss:
		return true
	case RoleClerk:
		return false
	default:
		return false
	}
}
