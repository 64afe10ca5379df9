package cart

import (
	"testing"
	"time"
)

func TestStoreCreateAndGet(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	sess := s.Create("12", "Budi")
	if sess.ID == "" {
		t.Fatal("session id is empty")
	}
	if sess.TableNumber != "12" || sess.CustomerName != "Budi" {
		t.Errorf("prefill = (%q, %q), want (12, Budi)", sess.TableNumber, sess.CustomerName)
	}

	got, ok := s.Get(sess.ID)
	if !ok {
		t.Fatal("session not found")
	}
	if got != sess {
		t.Error("Get returned a different session")
	}
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	defer s.Close()

	sess := s.Create("", "")
	time.Sleep(30 * time.Millisecond)
	if _, ok := s.Get(sess.ID); ok {
		t.Error("expired session still returned")
	}
	if s.Len() != 0 {
		t.Errorf("store still holds %d sessions", s.Len())
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	sess := s.Create("", "")
	s.Delete(sess.ID)
	if _, ok := s.Get(sess.ID); ok {
		t.Error("deleted session still returned")
	}
}

func TestStoreGetUnknown(t *testing.T) {
	s := NewStore(time.Minute)
	defer s.Close()

	if _, ok := s.Get("nope"); ok {
		t.Error("unknown id returned a session")
	}
}
