// Package income contains income tracking use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// GetIncomeInput represents the input for retrieving an income.
type GetIncomeInput struct {
	IncomeID uuid.UUID
}

// GetIncomeOutput represents the output of retrieving an income.
type GetIncomeOutput struct {
	Income *entity.Income
}

// GetIncomeUseCase retrieves a single income by ID.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute performs the income retrieval.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
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

	return &GetIncomeOutput{Income: income}, nil
}
