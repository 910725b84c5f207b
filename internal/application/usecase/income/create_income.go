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
)

// CreateIncomeInput represents the input for recording an income.
type CreateIncomeInput struct {
	FamilyMemberID uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Source         string
	Description    string
	Date           time.Time
}

// CreateIncomeOutput represents the output of recording an income.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase records a new income. Any member may record income
// for themselves; no administrator gate applies here.
type CreateIncomeUseCase struct {
	incomeRepo   adapter.IncomeRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:   incomeRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateIncomeRefs(ctx, uc.familyRepo, uc.categoryRepo, input.FamilyMemberID, input.CategoryID, input.Amount); err != nil {
		return nil, err
	}

	income := entity.NewIncome(
		input.FamilyMemberID,
		input.CategoryID,
		input.Amount,
		input.Source,
		input.Description,
		input.Date,
		uc.clock.Now(),
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{Income: income}, nil
}
