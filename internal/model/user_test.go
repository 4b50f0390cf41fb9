package model

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresOn: now.Add(time.Minute)}

	if session.Expired(now) {
		t.Error("session should not be expired before its deadline")
	}
	if !session.Expired(now.Add(2 * time.Minute)) {
		t.Error("session should be expired after its deadline")
	}
}

func TestSession_ProfileKey(t *testing.T) {
	userID := "user:42"

	authed := &Session{ID: "session:1", UserID: &userID}
	if authed.ProfileKey() != userID {
		t.Errorf("expected user ID, got %s", authed.ProfileKey())
	}

	guest := &Session{ID: "session:2"}
	if guest.ProfileKey() != "session:2" {
		t.Errorf("expected session ID for guest, got %s", guest.ProfileKey())
	}

	empty := ""
	degenerate := &Session{ID: "session:3", UserID: &empty}
	if degenerate.ProfileKey() != "session:3" {
		t.Errorf("expected session ID for empty user ID, got %s", degenerate.ProfileKey())
	}
}
