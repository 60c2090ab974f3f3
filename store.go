package tradesim

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Store is an account-identifier-keyed registry of accounts. It replaces a
// mutable session object passed between UI events: each caller looks the
// account up by identifier before every operation, and the per-account lock
// inside Account serializes the mutations themselves.
type Store struct {
	mu       sync.Mutex
	oracle   PriceOracle
	accounts map[string]*Account
}

// NewStore creates an empty store whose accounts will price trades through
// the given oracle.
func NewStore(oracle PriceOracle) *Store {
	return &Store{
		oracle:   oracle,
		accounts: make(map[string]*Account),
	}
}

// Create opens a new account under id. It fails on an empty id and on a
// duplicate one; accounts live for the duration of the session and cannot
// be deleted.
func (s *Store) Create(id string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[id]; exists {
		return nil, fmt.Errorf("%w: account %q already exists", ErrInvalidInput, id)
	}
	a, err := NewAccount(id, s.oracle)
	if err != nil {
		return nil, err
	}
	s.accounts[id] = a
	return a, nil
}

// Get returns the account registered under id, if any.
func (s *Store) Get(id string) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	return a, ok
}

// Open returns the account registered under id, creating it first if it
// does not exist yet.
func (s *Store) Open(id string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.accounts[id]; ok {
		return a, nil
	}
	a, err := NewAccount(id, s.oracle)
	if err != nil {
		return nil, err
	}
	s.accounts[id] = a
	return a, nil
}

// Accounts returns the registered account identifiers in sorted order.
func (s *Store) Accounts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := slices.Collect(maps.Keys(s.accounts))
	slices.Sort(ids)
	return ids
}
