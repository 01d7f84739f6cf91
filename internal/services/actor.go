package services

import (
	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/models"
)

// Actor is the authenticated caller of a service operation. It is passed
// explicitly so that authorization never depends on ambient request state.
type Actor struct {
	ID   string
	Role models.Role
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// requireRole returns ErrForbidden unless the actor holds one of roles.
func requireRole(actor Actor, roles ...models.Role) error {
	if actor.ID == "" {
		return apperrors.ErrUnauthorized
	}
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

// seesWholeDeal reports whether actor may read every investor's position and
// payouts on deal. Other callers only see their own rows.
func seesWholeDeal(actor Actor, deal *models.Deal) bool {
	return actor.IsAdmin() || (actor.Role == models.RolePartner && deal.PartnerID == actor.ID)
}

// requireDealOwnerOrAdmin allows administrators and the partner owning deal.
func requireDealOwnerOrAdmin(actor Actor, deal *models.Deal) error {
	if err := requireRole(actor, models.RoleAdmin, models.RolePartner); err != nil {
		return err
	}
	if actor.IsAdmin() || deal.PartnerID == actor.ID {
		return nil
	}
	return apperrors.ErrForbidden
}
