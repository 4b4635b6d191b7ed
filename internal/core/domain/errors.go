package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("could not validate credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrStudentNotFound = errors.New("student not registered")
var ErrAdminNotFound = errors.New("administrator not registered")
var ErrStudentExists = errors.New("student already registered")
var ErrAdminExists = errors.New("administrator already registered")
var ErrStudentHasTrips = errors.New("student has recorded trips")
var ErrAdminHasTrips = errors.New("administrator has recorded trips")
var ErrInsufficientBalance = errors.New("no tickets available")
var ErrInvalidTicketRequest = errors.New("invalid ticket request")
var ErrDuplicateRedemption = errors.New("redemption already processed")

// ValidationError reports the first password-policy rule a payload failed.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("password policy: %s", e.Message)
}
