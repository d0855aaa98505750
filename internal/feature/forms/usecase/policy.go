package usecase

import "agroform_backend/internal/feature/forms/domain/entity"

// CanAccess reports whether the given user may mutate the form.
// Only the recorded owner may; reads are open to everyone and do not
// consult this policy.
func CanAccess(userID uint, form *entity.Form) bool {
	return form.UserID == userID
}
