package services

import (
	"github.com/google/uuid"

	"github.com/gangasingh/uniconnect-backend/models"
)

// Access policy: pure predicates, evaluated after the auth middleware has
// established identity and before any mutation runs.

// IsAdmin gates subject/resource create/update/delete.
func IsAdmin(role models.UserRole) bool {
	return role == models.RoleAdmin
}

// IsSelf gates profile fetch/update.
func IsSelf(requestingUserID, targetUserID uuid.UUID) bool {
	return requestingUserID == targetUserID
}
