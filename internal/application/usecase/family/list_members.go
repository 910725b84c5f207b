// Package family contains family and membership use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
)

// ListMembersInput represents the input for listing family members.
type ListMembersInput struct {
	FamilyID uuid.UUID
}

// ListMembersOutput represents the output of listing family members.
type ListMembersOutput struct {
	Members []*entity.FamilyMember
}

// ListMembersUseCase lists the members of a family, each hydrated with
// its user's username and email.
type ListMembersUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(familyRepo adapter.FamilyRepository) *ListMembersUseCase {
	return &ListMembersUseCase{familyRepo: familyRepo}
}

// Execute lists the members.
func (uc *ListMembersUseCase) Execute(ctx context.Context, input ListMembersInput) (*ListMembersOutput, error) {
	members, err := uc.familyRepo.FindMembersByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}

	return &ListMembersOutput{Members: members}, nil
}
