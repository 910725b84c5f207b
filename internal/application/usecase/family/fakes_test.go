// Package family contains family and membership use cases.
package family

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// memFamilyRepo is an in-memory FamilyRepository used by the tests in
// this package.
type memFamilyRepo struct {
	families map[uuid.UUID]*entity.Family
	members  map[uuid.UUID]*entity.FamilyMember
	err      error
}

func newMemFamilyRepo() *memFamilyRepo {
	return &memFamilyRepo{
		families: make(map[uuid.UUID]*entity.Family),
		members:  make(map[uuid.UUID]*entity.FamilyMember),
	}
}

func (r *memFamilyRepo) CreateFamily(_ context.Context, family *entity.Family) error {
	if r.err != nil {
		return r.err
	}
	r.families[family.ID] = family
	return nil
}

func (r *memFamilyRepo) FindFamilyByID(_ context.Context, id uuid.UUID) (*entity.Family, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.families[id], nil
}

func (r *memFamilyRepo) CreateMember(_ context.Context, member *entity.FamilyMember) error {
	if r.err != nil {
		return r.err
	}
	r.members[member.ID] = member
	return nil
}

func (r *memFamilyRepo) FindMemberByID(_ context.Context, id uuid.UUID) (*entity.FamilyMember, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.members[id], nil
}

func (r *memFamilyRepo) FindMemberByUserID(_ context.Context, userID uuid.UUID) (*entity.FamilyMember, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.members {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memFamilyRepo) FindMemberByFamilyAndUser(_ context.Context, familyID, userID uuid.UUID) (*entity.FamilyMember, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.members {
		if m.FamilyID == familyID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memFamilyRepo) FindMembersByFamilyID(_ context.Context, familyID uuid.UUID) ([]*entity.FamilyMember, error) {
	if r.err != nil {
		return nil, r.err
	}
	var members []*entity.FamilyMember
	for _, m := range r.members {
		if m.FamilyID == familyID {
			members = append(members, m)
		}
	}
	return members, nil
}

func (r *memFamilyRepo) UpdateMember(_ context.Context, member *entity.FamilyMember) error {
	if r.err != nil {
		return r.err
	}
	r.members[member.ID] = member
	return nil
}

func (r *memFamilyRepo) DeleteMember(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.members, id)
	return nil
}

func (r *memFamilyRepo) CountAdministrators(_ context.Context, familyID uuid.UUID) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	count := 0
	for _, m := range r.members {
		if m.FamilyID == familyID && m.Role == entity.MemberRoleAdministrator {
			count++
		}
	}
	return count, nil
}

// memUserRepo is an in-memory UserRepository used by the tests in this
// package.
type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fixedClock returns the same instant on every call.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// nopTxManager runs the function without any transaction semantics.
type nopTxManager struct{}

func (nopTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// seedFamily creates a family with one active administrator and returns
// both, registering the admin's user account as well.
func seedFamily(familyRepo *memFamilyRepo, userRepo *memUserRepo, now time.Time) (*entity.Family, *entity.FamilyMember) {
	admin := entity.NewUser("alice", "alice@example.com", "hash", now)
	userRepo.users[admin.ID] = admin

	family := entity.NewFamily("alice's family", now)
	familyRepo.families[family.ID] = family

	member := entity.NewFamilyMember(family.ID, admin.ID, entity.MemberRoleAdministrator, now)
	member.Username = admin.Username
	member.Email = admin.Email
	familyRepo.members[member.ID] = member

	return family, member
}
