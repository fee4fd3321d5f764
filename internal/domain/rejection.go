// Package domain holds the entities of the system. Fields that carry a
// business rule are unexported and change only through validating methods;
// a failed validation returns a Rejection and leaves the entity untouched.
package domain

import "errors"

// Rejection is a business-rule refusal to mutate state. It travels through
// normal error returns but is not a system fault: the entity is unchanged and
// the process carries on.
type Rejection struct {
	Rule   string
	Reason string
}

func (r *Rejection) Error() string { return r.Reason }

var (
	ErrAmountNotPositive = &Rejection{Rule: "amount_positive", Reason: "amount must be positive"}
	ErrInsufficientFunds = &Rejection{Rule: "sufficient_funds", Reason: "insufficient funds"}
	ErrInvalidEmail      = &Rejection{Rule: "email_format", Reason: "email must contain '@' and '.'"}
	ErrPasswordTooShort  = &Rejection{Rule: "password_length", Reason: "password must be at least 8 characters"}
	ErrInvalidRole       = &Rejection{Rule: "role_membership", Reason: "role must be one of: developer, admin, user"}
	ErrNotManager        = &Rejection{Rule: "manager_capability", Reason: "employee is not a manager"}
	ErrProductMismatch   = &Rejection{Rule: "product_identity", Reason: "products differ in name or price"}
)

// IsRejection reports whether err is a business-rule rejection rather than a
// system error.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}
