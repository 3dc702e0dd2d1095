package engine

import "sync"

// boardLocks hands out one mutex per board id. Entries are dropped once no
// caller holds or waits on them.
type boardLocks struct {
	mu sync.Mutex
	m  map[string]*boardLock
}

type boardLock struct {
	sync.Mutex
	refs int
}

func (l *boardLocks) lock(id string) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*boardLock)
	}
	bl, ok := l.m[id]
	if !ok {
		bl = &boardLock{}
		l.m[id] = bl
	}
	bl.refs++
	l.mu.Unlock()

	bl.Lock()
	return func() {
		bl.Unlock()
		l.mu.Lock()
		bl.refs--
		if bl.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}

func (l *boardLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
