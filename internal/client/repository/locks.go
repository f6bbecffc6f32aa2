package repository

import "sync"

// lockTable hands out one mutex per client id so that read-modify-write
// cycles against the same document are serialized while operations on
// different clients proceed independently.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *lockTable) lock(id string) *sync.Mutex {
	t.mu.Lock()
	m, ok := t.locks[id]
	if !ok {
		m = &sync.Mutex{}
		t.locks[id] = m
	}
	t.mu.Unlock()

	m.Lock()
	return m
}
