package models

import "testing"

func TestIsValidConnectionStatus(t *testing.T) {
	valid := []string{ConnectionPending, ConnectionAccepted, ConnectionDenied, ConnectionCompleted}
	for _, s := range valid {
		if !IsValidConnectionStatus(s) {
			t.Errorf("IsValidConnectionStatus(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "pending", "Accepted", "CANCELLED", "DONE"}
	for _, s := range invalid {
		if IsValidConnectionStatus(s) {
			t.Errorf("IsValidConnectionStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{ConnectionPending, ConnectionAccepted},
		{ConnectionPending, ConnectionDenied},
		{ConnectionAccepted, ConnectionCompleted},
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Errorf("CanTransition(%s, %s) = %v, want nil", tc.from, tc.to, err)
		}
	}

	statuses := []string{ConnectionPending, ConnectionAccepted, ConnectionDenied, ConnectionCompleted}
	isAllowed := func(from, to string) bool {
		for _, tc := range allowed {
			if tc.from == from && tc.to == to {
				return true
			}
		}
		return false
	}
	for _, from := range statuses {
		for _, to := range statuses {
			if isAllowed(from, to) {
				continue
			}
			if err := CanTransition(from, to); err == nil {
				t.Errorf("CanTransition(%s, %s) = nil, want error", from, to)
			}
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []string{ConnectionDenied, ConnectionCompleted} {
		for _, to := range []string{ConnectionPending, ConnectionAccepted, ConnectionDenied, ConnectionCompleted} {
			if err := CanTransition(terminal, to); err == nil {
				t.Errorf("CanTransition(%s, %s) = nil, want error", terminal, to)
			}
		}
	}
}
