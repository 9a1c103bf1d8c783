package auth

import (
	"context"
	"sync"
)

// fakeUserStore is an in-memory UserStore enforcing email uniqueness
// the way the real unique index does.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]Identity // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]Identity)}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &identity, nil
}

func (f *fakeUserStore) Create(_ context.Context, identity *Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[identity.Email]; ok {
		return ErrEmailTaken
	}
	f.users[identity.Email] = *identity
	return nil
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

// fakeOTPStore is an in-memory OTPStore with atomic consume semantics.
type fakeOTPStore struct {
	mu   sync.Mutex
	recs map[string]OTPRecord
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{recs: make(map[string]OTPRecord)}
}

func (f *fakeOTPStore) Put(_ context.Context, rec OTPRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs[rec.Email] = rec
	return nil
}

func (f *fakeOTPStore) Get(_ context.Context, email string) (*OTPRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (f *fakeOTPStore) ConsumeIfMatch(_ context.Context, email, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[email]
	if !ok || rec.Code != code {
		return false, nil
	}
	delete(f.recs, email)
	return true, nil
}

func (f *fakeOTPStore) has(email string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.recs[email]
	return ok
}
