// Package income contains income tracking use cases.
package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// UpdateIncomeInput represents the input for updating an income.
type UpdateIncomeInput struct {
	IncomeID       uuid.UUID
	FamilyMemberID uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Source         string
	Description    string
	Date           time.Time
	ActingUserID   uuid.UUID
}

// UpdateIncomeOutput represents the output of updating an income.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase rewrites an existing income record. Admin-gated;
// references are re-validated on every update.
type UpdateIncomeUseCase struct {
	incomeRepo   adapter.IncomeRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo:   incomeRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if err := requireAdministrator(ctx, uc.familyRepo, input.ActingUserID); err != nil {
		return nil, err
	}

	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find income: %w", err)
	}
	if income == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	if err := validateIncomeRefs(ctx, uc.familyRepo, uc.categoryRepo, input.FamilyMemberID, input.CategoryID, input.Amount); err != nil {
		return nil, err
	}

	source := input.Source
	if source == "" {
		source = entity.UnspecifiedSource
	}

	income.FamilyMemberID = input.FamilyMemberID
	income.CategoryID = input.CategoryID
	income.Amount = input.Amount
	income.Source = source
	income.Description = input.Description
	income.Date = input.Date

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &UpdateIncomeOutput{Income: income}, nil
}
