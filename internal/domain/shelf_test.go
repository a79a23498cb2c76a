package domain

import "testing"

func TestShelfStatus_Valid(t *testing.T) {
	for s := StatusWantToRead; s <= StatusDidNotFinish; s++ {
		if !s.Valid() {
			t.Errorf("status %d should be valid", s)
		}
	}
	if ShelfStatus(-1).Valid() {
		t.Error("negative status should be invalid")
	}
	if ShelfStatus(4).Valid() {
		t.Error("status 4 should be invalid")
	}
}

func TestShelfStatus_Label(t *testing.T) {
	tests := []struct {
		status ShelfStatus
		want   string
	}{
		{StatusWantToRead, "Want to Read"},
		{StatusCurrentlyReading, "Currently Reading"},
		{StatusRead, "Read"},
		{StatusDidNotFinish, "Did Not Finish"},
		{ShelfStatus(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSession_Active(t *testing.T) {
	if (Session{}).Active() {
		t.Error("zero session should not be active")
	}
	if (Session{Authenticated: true}).Active() {
		t.Error("authenticated flag without a user id should not be active")
	}
	if !(Session{UserID: "user-1", Authenticated: true}).Active() {
		t.Error("authenticated session with user id should be active")
	}
}
