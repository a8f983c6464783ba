package service

import (
	"dapurkita/internal/domain/entity"
	"dapurkita/pkg/errors"
)

// CanMessage decides whether a sender may message a recipient based solely on
// their current roles. Both roles must be resolved server-side from the user
// directory; role values supplied by the client are never trusted here.
func CanMessage(senderRole, recipientRole entity.Role) error {
	switch {
	case senderRole == entity.RoleAdmin:
		return nil
	case senderRole == entity.RoleFoodie && recipientRole == entity.RoleCook:
		return nil
	case senderRole == entity.RoleFoodie && recipientRole == entity.RoleFoodie:
		return errors.Forbidden("You can only message cooks", nil)
	case senderRole == entity.RoleCook && recipientRole == entity.RoleFoodie:
		return nil
	case senderRole == entity.RoleCook && recipientRole == entity.RoleCook:
		return errors.Forbidden("You can only message foodies", nil)
	default:
		// Every unmatched pair (cook -> admin, foodie -> admin, unknown
		// roles) falls through to the generic denial.
		return errors.Forbidden("Messaging not allowed between these user types", nil)
	}
}
