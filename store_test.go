package tradesim

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

func TestStore_Create(t *testing.T) {
	store := NewStore(DefaultOracle())

	a, err := store.Create("u1")
	if err != nil {
		t.Fatalf("Create(u1) failed: %v", err)
	}
	if a.ID() != "u1" {
		t.Errorf("ID() = %q, want %q", a.ID(), "u1")
	}

	if _, err := store.Create("u1"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("duplicate Create(u1) error = %v, want ErrInvalidInput", err)
	}
	if _, err := store.Create(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Create(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestStore_GetAndOpen(t *testing.T) {
	store := NewStore(DefaultOracle())

	if _, ok := store.Get("u1"); ok {
		t.Error("Get(u1) found an account in an empty store")
	}

	a, err := store.Open("u1")
	if err != nil {
		t.Fatalf("Open(u1) failed: %v", err)
	}
	again, err := store.Open("u1")
	if err != nil {
		t.Fatalf("second Open(u1) failed: %v", err)
	}
	if a != again {
		t.Error("Open(u1) created a second account instead of returning the first")
	}

	got, ok := store.Get("u1")
	if !ok || got != a {
		t.Error("Get(u1) did not return the opened account")
	}
}

func TestStore_Accounts(t *testing.T) {
	store := NewStore(DefaultOracle())
	for _, id := range []string{"charlie", "alice", "bob"} {
		if _, err := store.Create(id); err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
	}
	got := store.Accounts()
	want := []string{"alice", "bob", "charlie"}
	if !slices.Equal(got, want) {
		t.Errorf("Accounts() = %v, want %v", got, want)
	}
}

func TestStore_ConcurrentUse(t *testing.T) {
	store := NewStore(DefaultOracle())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := store.Open("shared")
			if err != nil {
				t.Errorf("Open(shared) failed: %v", err)
				return
			}
			for range 100 {
				if err := a.Deposit(USD(1)); err != nil {
					t.Errorf("Deposit failed: %v", err)
					return
				}
				a.PortfolioValue()
			}
		}()
	}
	wg.Wait()

	a, _ := store.Get("shared")
	if got, want := a.Balance(), USD(800); !got.Equal(want) {
		t.Errorf("Balance() after concurrent deposits = %s, want %s", got, want)
	}
	// seed record + 800 deposits
	if got := len(a.Transactions()); got != 801 {
		t.Errorf("len(Transactions()) = %d, want 801", got)
	}
}
