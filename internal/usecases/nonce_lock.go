package usecases

import (
	"strings"
	"sync"
)

// addressLocks serializes nonce-fetch-then-broadcast per sending address, so
// two concurrent submissions from the same wallet cannot claim the same
// nonce. Entries are never evicted; the map is bounded by the wallet count.
type addressLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAddressLocks() *addressLocks {
	return &addressLocks{locks: make(map[string]*sync.Mutex)}
}

// For returns the mutex guarding the given address
func (l *addressLocks) For(address string) *sync.Mutex {
	key := strings.ToLower(address)

	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	return lock
}
