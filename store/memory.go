package store

import (
	"context"
	"sync"

	"schoolapp-backend/entity"
	"schoolapp-backend/errs"
)

// In-memory counterparts of the mongo stores. They back the unit tests and
// the MONGO_URI-less dev mode, and enforce the same uniqueness the mongo
// indexes do. Deletes of missing records succeed, matching DeleteMany.

type MemoryUsers struct {
	mu    sync.RWMutex
	users []*entity.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{}
}

func (s *MemoryUsers) Insert(ctx context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.users {
		if other.Username == u.Username || other.Email == u.Email || other.UserID == u.UserID {
			return errs.ErrAlreadyExists
		}
	}

	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *MemoryUsers) FindAll(ctx context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryUsers) FindByUserID(ctx context.Context, userid string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.UserID == userid })
}

func (s *MemoryUsers) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.Username == username })
}

func (s *MemoryUsers) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.Username == username || u.Email == email })
}

func (s *MemoryUsers) FindByLogin(ctx context.Context, username, usertype string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.Username == username && u.UserType == usertype })
}

func (s *MemoryUsers) find(match func(*entity.User) bool) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *MemoryUsers) CountByType(ctx context.Context, usertype string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, u := range s.users {
		if u.UserType == usertype {
			n++
		}
	}
	return n, nil
}

func (s *MemoryUsers) DeleteByUserID(ctx context.Context, userid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.UserID != userid {
			kept = append(kept, u)
		}
	}
	s.users = kept
	return nil
}

type MemoryProfiles struct {
	mu       sync.RWMutex
	profiles []*entity.Profile
}

func NewMemoryProfiles() *MemoryProfiles {
	return &MemoryProfiles{}
}

func (s *MemoryProfiles) Insert(ctx context.Context, p *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.profiles {
		if other.UserID == p.UserID || other.ProfileUnID == p.ProfileUnID {
			return errs.ErrAlreadyExists
		}
	}

	cp := *p
	s.profiles = append(s.profiles, &cp)
	return nil
}

func (s *MemoryProfiles) FindByUserID(ctx context.Context, userid string) (*entity.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if p.UserID == userid {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *MemoryProfiles) DeleteByUserID(ctx context.Context, userid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.profiles[:0]
	for _, p := range s.profiles {
		if p.UserID != userid {
			kept = append(kept, p)
		}
	}
	s.profiles = kept
	return nil
}

type MemoryAddresses struct {
	mu        sync.RWMutex
	addresses []*entity.Address
}

func NewMemoryAddresses() *MemoryAddresses {
	return &MemoryAddresses{}
}

func (s *MemoryAddresses) Insert(ctx context.Context, a *entity.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.addresses {
		if other.AddressUnID == a.AddressUnID {
			return errs.ErrAlreadyExists
		}
	}

	cp := *a
	s.addresses = append(s.addresses, &cp)
	return nil
}

func (s *MemoryAddresses) FindByUserID(ctx context.Context, userid string) ([]*entity.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Address
	for _, a := range s.addresses {
		if a.UserID == userid {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemoryAddresses) DeleteByUserID(ctx context.Context, userid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.addresses[:0]
	for _, a := range s.addresses {
		if a.UserID != userid {
			kept = append(kept, a)
		}
	}
	s.addresses = kept
	return nil
}

type MemoryParents struct {
	mu      sync.RWMutex
	parents []*entity.Parent
}

func NewMemoryParents() *MemoryParents {
	return &MemoryParents{}
}

func (s *MemoryParents) Insert(ctx context.Context, p *entity.Parent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.parents {
		if other.ParentUnID == p.ParentUnID {
			return errs.ErrAlreadyExists
		}
	}

	cp := *p
	s.parents = append(s.parents, &cp)
	return nil
}

func (s *MemoryParents) FindByUserID(ctx context.Context, userid string) (*entity.Parent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parents {
		if p.UserID == userid {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *MemoryParents) DeleteByUserID(ctx context.Context, userid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.parents[:0]
	for _, p := range s.parents {
		if p.UserID != userid {
			kept = append(kept, p)
		}
	}
	s.parents = kept
	return nil
}

type MemoryFiles struct {
	mu    sync.RWMutex
	files []*entity.File
}

func NewMemoryFiles() *MemoryFiles {
	return &MemoryFiles{}
}

func (s *MemoryFiles) Insert(ctx context.Context, f *entity.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.files {
		if other.FileUnID == f.FileUnID {
			return errs.ErrAlreadyExists
		}
	}

	cp := *f
	s.files = append(s.files, &cp)
	return nil
}

func (s *MemoryFiles) FindByUserID(ctx context.Context, userid string) ([]*entity.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.File
	for _, f := range s.files {
		if f.UserID == userid {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemoryFiles) DeleteByUserID(ctx context.Context, userid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.files[:0]
	for _, f := range s.files {
		if f.UserID != userid {
			kept = append(kept, f)
		}
	}
	s.files = kept
	return nil
}
