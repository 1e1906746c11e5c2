package preview

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJobStoreInsertIsAtMostOnePerDocument(t *testing.T) {
	store := NewJobStore()
	docID := uuid.New()
	now := time.Now()

	first, created := store.Insert(docID, now)
	if !created {
		t.Fatal("first insert did not create a job")
	}
	second, created := store.Insert(docID, now.Add(time.Hour))
	if created {
		t.Error("second insert created a duplicate job")
	}
	if second.EnqueuedAt != first.EnqueuedAt {
		t.Error("second insert returned different job state")
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d jobs, want 1", store.Len())
	}
}

func TestJobStorePopDueFiltersAndLimits(t *testing.T) {
	store := NewJobStore()
	now := time.Now()

	dueA, _ := store.Insert(uuid.New(), now.Add(-time.Second))
	dueB, _ := store.Insert(uuid.New(), now.Add(-time.Minute))
	store.Insert(uuid.New(), now.Add(time.Hour)) // not due
	notDue := Job{DocumentID: uuid.New(), NextAttemptAt: now.Add(time.Hour)}
	store.Reschedule(notDue)

	popped := store.PopDue(now, 10)
	if len(popped) != 2 {
		t.Fatalf("popped %d jobs, want 2", len(popped))
	}
	seen := map[uuid.UUID]bool{}
	for _, j := range popped {
		seen[j.DocumentID] = true
	}
	if !seen[dueA.DocumentID] || !seen[dueB.DocumentID] {
		t.Error("due jobs missing from pop result")
	}
	if store.Len() != 2 {
		t.Errorf("store holds %d jobs after pop, want 2", store.Len())
	}

	// Batch limit.
	store2 := NewJobStore()
	for i := 0; i < 5; i++ {
		store2.Insert(uuid.New(), now.Add(-time.Second))
	}
	if got := len(store2.PopDue(now, 2)); got != 2 {
		t.Errorf("popped %d jobs with limit 2", got)
	}
	if store2.Len() != 3 {
		t.Errorf("store holds %d jobs, want 3", store2.Len())
	}
}

func TestJobStoreRescheduleAndRemove(t *testing.T) {
	store := NewJobStore()
	docID := uuid.New()
	job, _ := store.Insert(docID, time.Now())

	job.Attempts = 2
	job.NextAttemptAt = time.Now().Add(time.Minute)
	store.Reschedule(job)

	got, ok := store.Get(docID)
	if !ok || got.Attempts != 2 {
		t.Fatalf("rescheduled job not found or attempts wrong: %+v", got)
	}

	store.Remove(docID)
	if _, ok := store.Get(docID); ok {
		t.Error("job still present after remove")
	}
}
