// Package family contains family and membership use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// requireAdministrator resolves the acting user's membership and fails
// closed unless it is an active administrator. The role is re-derived on
// every call so role changes take effect immediately.
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
