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

func TestRemoveMemberUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("administrator removes a member", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		family, admin := seedFamily(familyRepo, userRepo, now)

		plain := entity.NewFamilyMember(family.ID, uuid.New(), entity.MemberRoleMember, now)
		familyRepo.members[plain.ID] = plain

		uc := NewRemoveMemberUseCase(familyRepo)
		output, err := uc.Execute(ctx, RemoveMemberInput{
			MemberID:     plain.ID,
			ActingUserID: admin.UserID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected removal to report success")
		}
		if _, ok := familyRepo.members[plain.ID]; ok {
			t.Error("expected member to be deleted")
		}
	})

	t.Run("self-removal is rejected", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		family, admin := seedFamily(familyRepo, userRepo, now)

		// A second administrator so the last-admin rule cannot mask
		// the self-removal rule.
		second := entity.NewFamilyMember(family.ID, uuid.New(), entity.MemberRoleAdministrator, now)
		familyRepo.members[second.ID] = second

		uc := NewRemoveMemberUseCase(familyRepo)
		_, err := uc.Execute(ctx, RemoveMemberInput{
			MemberID:     admin.ID,
			ActingUserID: admin.UserID,
		})

		var familyErr *domainerror.FamilyError
		if !errors.As(err, &familyErr) {
			t.Fatalf("expected FamilyError, got %v", err)
		}
		if familyErr.Code != domainerror.ErrCodeCannotRemoveSelf {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCannotRemoveSelf, familyErr.Code)
		}
	})

	t.Run("removing the last administrator is rejected", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		_, admin := seedFamily(familyRepo, userRepo, now)

		// The acting admin belongs to another family so the target is
		// the sole administrator of its own family.
		otherFamily := entity.NewFamily("other family", now)
		familyRepo.families[otherFamily.ID] = otherFamily
		soleAdmin := entity.NewFamilyMember(otherFamily.ID, uuid.New(), entity.MemberRoleAdministrator, now)
		familyRepo.members[soleAdmin.ID] = soleAdmin

		uc := NewRemoveMemberUseCase(familyRepo)
		_, err := uc.Execute(ctx, RemoveMemberInput{
			MemberID:     soleAdmin.ID,
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

	t.Run("non-administrator is rejected", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		family, admin := seedFamily(familyRepo, userRepo, now)

		plain := entity.NewFamilyMember(family.ID, uuid.New(), entity.MemberRoleMember, now)
		familyRepo.members[plain.ID] = plain

		uc := NewRemoveMemberUseCase(familyRepo)
		_, err := uc.Execute(ctx, RemoveMemberInput{
			MemberID:     admin.ID,
			ActingUserID: plain.UserID,
		})

		var familyErr *domainerror.FamilyError
		if !errors.As(err, &familyErr) {
			t.Fatalf("expected FamilyError, got %v", err)
		}
		if familyErr.Code != domainerror.ErrCodeNotAdministrator {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAdministrator, familyErr.Code)
		}
	})

	t.Run("unknown member is rejected", func(t *testing.T) {
		familyRepo := newMemFamilyRepo()
		userRepo := newMemUserRepo()
		_, admin := seedFamily(familyRepo, userRepo, now)

		uc := NewRemoveMemberUseCase(familyRepo)
		_, err := uc.Execute(ctx, RemoveMemberInput{
			MemberID:     uuid.New(),
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
}
