package entities

import "testing"

func TestPolicyMatrix(t *testing.T) {
	boss := Requester{ID: "boss-1", Role: RoleBoss}
	clerk := Requester{ID: "clerk-1", Role: RoleClerk}

	bossTask := &Task{ID: "t-boss", UserID: "boss-1", OwnerRole: RoleBoss}
	ownTask := &Task{ID: "t-own", UserID: "clerk-1", OwnerRole: RoleClerk}
	otherClerkTask := &Task{ID: "t-other", UserID: "clerk-2", OwnerRole: RoleClerk}

	tests := []struct {
		name       string
		requester  Requester
		task       *Task
		canView    bool
		canToggle  bool
		canReorder bool
	}{
		{"boss on own task", boss, bossTask, true, true, true},
		{"boss on clerk task", boss, ownTask, true, true, true},
		{"clerk on own task", clerk, ownTask, true, true, true},
		{"clerk on boss task", clerk, bossTask, true, true, false},
		{"clerk on another clerk's task", clerk, otherClerkTask, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.requester.CanView(tt.task); got != tt.canView {
				t.Errorf("CanView = %v, want %v", got, tt.canView)
			}
			if got := tt.requester.CanToggle(tt.task); got != tt.canToggle {
				t.Errorf("CanToggle = %v, want %v", got, tt.canToggle)
			}
			if got := tt.requester.CanReorder(tt.task); got != tt.canReorder {
				t.Errorf("CanReorder = %v, want %v", got, tt.canReorder)
			}
		})
	}
}

func TestPolicyOwnershipShortCircuitsRole(t *testing.T) {
	// A requester with a role outside the closed set still has full rights on
	// their own tasks.
	odd := Requester{ID: "u-1", Role: Role("intern")}
	own := &Task{ID: "t-1", UserID: "u-1", OwnerRole: Role("intern")}
	other := &Task{ID: "t-2", UserID: "u-2", OwnerRole: RoleBoss}

	if !odd.CanView(own) || !odd.CanToggle(own) || !odd.CanReorder(own) {
		t.Error("expected full rights on own task regardless of role")
	}
	if odd.CanView(other) || odd.CanToggle(other) || odd.CanReorder(other) {
		t.Error("expected no rights on another user's task for unknown role")
	}
}
