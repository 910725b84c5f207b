// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

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
