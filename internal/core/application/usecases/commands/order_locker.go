package commands

import (
	"sync"

	"coffeeshop/internal/core/domain/model/kernel"
)

// OrderLocker serialises work on a single order.
type OrderLocker interface {
	// Lock blocks until the order is free and returns the matching unlock.
	Lock(id kernel.UUID) (unlock func())
}

// KeyedMutex is an OrderLocker backed by one mutex per order id. Entries are
// dropped when nobody holds or waits for them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*refMutex)}
}

func (k *KeyedMutex) Lock(id kernel.UUID) func() {
	key := id.String()

	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.Unlock()

			k.mu.Lock()
			m.refs--
			if m.refs == 0 {
				delete(k.locks, key)
			}
			k.mu.Unlock()
		})
	}
}

// Len is the number of ids currently locked or waited on.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
