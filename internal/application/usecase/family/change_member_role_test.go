// Package family contains family and membership use cases.
package family

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

func TestChangeMemberRoleUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("administrator promotes a member", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		family, admin := seedFamily(familyRepo, userRepo, now)

		plain := entity.NewFamilyMember(family.ID, uuid.New(), entity.MemberRoleMember, now)
		familyRepo.members[plain.ID] = plain

		uc := NewChangeMemberRoleUseCase(familyRepo)
		output, err := uc.Execute(ctx, ChangeMemberRoleInput{
			MemberID:     plain.ID,
			NewRole:      entity.MemberRoleAdministrator,
			ActingUserID: admin.UserID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Member.Role != entity.MemberRoleAdministrator {
			t.Errorf("expected role administrator, got %s", output.Member.Role)
		}
		if familyRepo.members[plain.ID].Role != entity.MemberRoleAdministrator {
			t.Error("expected role change to be persisted")
		}
	})

	t.Run("demoting the last administrator is rejected", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		_, admin := seedFamily(familyRepo, userRepo, now)

		uc := NewChangeMemberRoleUseCase(familyRepo)
		_, err := uc.Execute(ctx, ChangeMemberRoleInput{
			MemberID:     admin.ID,
			NewRole:      entity.MemberRoleMember,
			ActingUserID: admin.UserID,
		})

		var familyErr *domainerror.FamilyError
		if !errors.As(err, &familyErr) {
			t.Fatalf("expected FamilyError, got %v", err)
		}
		if familyErr.Code != domainerror.ErrCodeCannotRemoveLastAdministrator {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCannotRemoveLastAdministrator, familyErr.Code)
		}
	})

	t.Run("demoting one of two administrators succeeds", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		family, admin := seedFamily(familyRepo, userRepo, now)

		second := entity.NewFamilyMember(family.ID, uuid.New(), entity.MemberRoleAdministrator, now)
		familyRepo.members[second.ID] = second

		uc := NewChangeMemberRoleUseCase(familyRepo)
		output, err := uc.Execute(ctx, ChangeMemberRoleInput{
			MemberID:     second.ID,
			NewRole:      entity.MemberRoleMember,
			ActingUserID: admin.UserID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Member.Role != entity.MemberRoleMember {
			t.Errorf("expected role member, got %s", output.Member.Role)
		}
	})

	t.Run("unknown member is rejected", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		_, admin := seedFamily(familyRepo, userRepo, now)

		uc := NewChangeMemberRoleUseCase(familyRepo)
		_, err := uc.Execute(ctx, ChangeMemberRoleInput{
			MemberID:     uuid.New(),
			NewRole:      entity.MemberRoleMember,
			ActingUserID: admin.UserID,
		})

		var familyErr *domainerror.FamilyError
		if !errors.As(err, &familyErr) {
			t.Fatalf("expected FamilyError, got %v", err)
		}
		if familyErr.Code != domainerror.ErrCodeMemberNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMemberNotFound, familyErr.Code)
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		_, admin := seedFamily(familyRepo, userRepo, now)

		uc := NewChangeMemberRoleUseCase(familyRepo)
		_, err := uc.Execute(ctx, ChangeMemberRoleInput{
			MemberID:     admin.ID,
			NewRole:      entity.MemberRole("superuser"),
			ActingUserID: admin.UserID,
		})

		var familyErr *domainerror.FamilyError
		if !errors.As(err, &familyErr) {
			t.Fatalf("expected FamilyError, got %v", err)
		}
		if familyErr.Code != domainerror.ErrCodeInvalidMemberRole {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidMemberRole, familyErr.Code)
		}
	})
}
