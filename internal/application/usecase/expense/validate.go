// Package expense contains expense tracking use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// validateExpenseRefs checks the member and category references shared by
// expense creation and update. The category must be an expense category.
func validateExpenseRefs(
	ctx context.Context,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
	memberID, categoryID uuid.UUID,
	amount decimal.Decimal,
) error {
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	member, err := familyRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to find family member: %w", err)
	}
	if member == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionMemberNotFound,
			"selected family member not found",
			domainerror.ErrTransactionMemberNotFound,
		)
	}

	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionCategoryMissing,
			"selected category not found",
			domainerror.ErrTransactionCategoryNotFound,
		)
	}
	if category.Type != entity.CategoryTypeExpense {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			"category is not an expense category",
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return nil
}

// requireAdministrator fails closed unless the acting user is an active
// administrator of some family.
func requireAdministrator(ctx context.Context, familyRepo adapter.FamilyRepository, actingUserID uuid.UUID) error {
	member, err := familyRepo.FindMemberByUserID(ctx, actingUserID)
	if err != nil {
		return fmt.Errorf("failed to resolve acting member: %w", err)
	}
	if member == nil || !member.IsActive || !member.IsAdministrator() {
		return domainerror.NewFamilyError(
			domainerror.ErrCodeNotAdministrator,
			"only a family administrator can perform this action",
			domainerror.ErrNotAdministrator,
		)
	}
	return nil
}
