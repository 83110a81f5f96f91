package attendance

import "sync"

// employeeLocker serializes the read-latest → decide → write sequence per
// employee. Without it a live punch racing the guard sweep can both observe
// an open session and both write a closing event.
type employeeLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newEmployeeLocker() *employeeLocker {
	return &employeeLocker{locks: make(map[int64]*sync.Mutex)}
}

// Lock acquires the mutex for one employee and returns its unlock func.
// Mutexes are never evicted; the population is bounded by headcount.
func (l *employeeLocker) Lock(employeeID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[employeeID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[employeeID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
