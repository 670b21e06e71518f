package store

import (
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ms := NewMemoryStore()
	rec := &Record{ID: "abc", CreatedAt: time.Now()}
	ms.SaveSession(rec)

	got, ok := ms.GetSession("abc")
	if !ok || got != rec {
		t.Fatalf("expected stored record, got %+v ok=%v", got, ok)
	}
	if ms.CountSessions() != 1 {
		t.Fatalf("expected 1 session, got %d", ms.CountSessions())
	}

	replacement := &Record{ID: "abc", CreatedAt: time.Now()}
	ms.SaveSession(replacement)
	if got, _ := ms.GetSession("abc"); got != replacement || ms.CountSessions() != 1 {
		t.Fatal("expected save to replace the record under the same id")
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	ms := NewMemoryStore()
	if _, ok := ms.GetSession("missing"); ok {
		t.Fatal("expected missing record")
	}
}

func TestMemoryStorePruneSessions(t *testing.T) {
	ms := NewMemoryStore()
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	ms.SaveSession(&Record{ID: "old", CreatedAt: now.Add(-48 * time.Hour)})
	ms.SaveSession(&Record{ID: "new", CreatedAt: now.Add(-time.Hour)})

	if removed := ms.PruneSessions(now.Add(-24 * time.Hour)); removed != 1 {
		t.Fatalf("expected 1 pruned, got %d", removed)
	}
	if _, ok := ms.GetSession("old"); ok {
		t.Fatal("expected old record pruned")
	}
	if _, ok := ms.GetSession("new"); !ok {
		t.Fatal("expected recent record kept")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ms := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			ms.SaveSession(&Record{ID: id, CreatedAt: time.Now()})
			ms.GetSession(id)
			ms.CountSessions()
		}(i)
	}
	wg.Wait()
	if ms.CountSessions() == 0 {
		t.Fatal("expected sessions to be stored")
	}
}
