// Package income contains income tracking use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for deleting an income.
type DeleteIncomeInput struct {
	IncomeID     uuid.UUID
	ActingUserID uuid.UUID
}

// DeleteIncomeOutput represents the output of deleting an income.
type DeleteIncomeOutput struct {
	Success bool
}

// DeleteIncomeUseCase removes an income record. Admin-gated.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	familyRepo adapter.FamilyRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, familyRepo adapter.FamilyRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		familyRepo: familyRepo,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
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

	if err := uc.incomeRepo.Delete(ctx, income.ID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}

	return &DeleteIncomeOutput{Success: true}, nil
}
