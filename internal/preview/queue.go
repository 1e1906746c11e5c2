package preview

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is one pending or retrying preview request. At most one live job
// exists per document.
type Job struct {
	DocumentID    uuid.UUID
	Attempts      int
	NextAttemptAt time.Time
	EnqueuedAt    time.Time
}

// JobStore holds live preview jobs keyed by document. Insert and
// remove happen concurrently from enqueueing callers and the scheduler
// tick, so every operation runs under one lock; in particular the
// one-job-per-document check and the insert are a single critical
// section.
type JobStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*Job
}

func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[uuid.UUID]*Job)}
}

// Insert adds a job for the document unless one is already live. It
// returns the live job and whether a new one was created.
func (s *JobStore) Insert(documentID uuid.UUID, now time.Time) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.jobs[documentID]; ok {
		return *existing, false
	}
	job := &Job{
		DocumentID:    documentID,
		NextAttemptAt: now,
		EnqueuedAt:    now,
	}
	s.jobs[documentID] = job
	return *job, true
}

// Get returns the live job for the document, if any.
func (s *JobStore) Get(documentID uuid.UUID) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[documentID]; ok {
		return *job, true
	}
	return Job{}, false
}

// PopDue removes and returns up to limit jobs whose next attempt time
// has passed. Jobs not yet due stay in the store untouched.
func (s *JobStore) PopDue(now time.Time, limit int) []Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []Job
	for id, job := range s.jobs {
		if len(due) >= limit {
			break
		}
		if !job.NextAttemptAt.After(now) {
			due = append(due, *job)
			delete(s.jobs, id)
		}
	}
	return due
}

// Reschedule reinserts a job after a failed attempt with its attempt
// count and next eligible time advanced.
func (s *JobStore) Reschedule(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := job
	s.jobs[job.DocumentID] = &j
}

// Remove drops the job for the document, if one is live.
func (s *JobStore) Remove(documentID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, documentID)
}

// Len reports the number of live jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}
