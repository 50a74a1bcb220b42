package metrics

import (
	"sync"
	"testing"
)

func TestInMemoryRecorder_Snapshot(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()

	rec.IncUserRegistered()
	rec.IncLoginSucceeded()
	rec.IncLoginFailed()
	rec.IncLoginFailed()
	rec.IncTodoCreated()
	rec.IncTodoCreated()
	rec.IncTodoCreated()
	rec.IncTodoUpdated()
	rec.IncTodoDeleted()

	snap := rec.Snapshot()

	if snap.UsersRegistered != 1 {
		t.Errorf("expected 1 registration, got %d", snap.UsersRegistered)
	}
	if snap.LoginsSucceeded != 1 {
		t.Errorf("expected 1 successful login, got %d", snap.LoginsSucceeded)
	}
	if snap.LoginsFailed != 2 {
		t.Errorf("expected 2 failed logins, got %d", snap.LoginsFailed)
	}
	if snap.TodosCreated != 3 {
		t.Errorf("expected 3 created todos, got %d", snap.TodosCreated)
	}
	if snap.TodosUpdated != 1 {
		t.Errorf("expected 1 updated todo, got %d", snap.TodosUpdated)
	}
	if snap.TodosDeleted != 1 {
		t.Errorf("expected 1 deleted todo, got %d", snap.TodosDeleted)
	}
}

func TestInMemoryRecorder_ConcurrentIncrements(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()

	const goroutines = 8
	const perGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				rec.IncTodoCreated()
			}
		}()
	}
	wg.Wait()

	if got := rec.Snapshot().TodosCreated; got != goroutines*perGoroutine {
		t.Errorf("expected %d created todos, got %d", goroutines*perGoroutine, got)
	}
}
