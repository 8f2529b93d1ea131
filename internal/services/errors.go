package services

import "errors"

// Errors returned by the services. Their messages are sent to clients as is.
var (
	ErrUserNotFound          = errors.New("No such user")
	ErrIDPUserNotFound       = errors.New("No IDP user with such an email")
	ErrAdminNotFound         = errors.New("No such admin")
	ErrWalletNotFound        = errors.New("Non existent wallet")
	ErrEmailTaken            = errors.New("User with that email already present")
	ErrUsernameTaken         = errors.New("User with that username already present")
	ErrAdminTaken            = errors.New("Admin with that email or username already present")
	ErrExclusiveFilters      = errors.New("Can't search by username and location. Use only one.")
	ErrIncompleteCoordinates = errors.New("Longitude and latitude MUST BE defined together when using a location.")
	ErrSelfFollow            = errors.New("Users can't follow themselves")
	ErrInvalidReceiver       = errors.New("Deposits can only be made to trainers")
	ErrNoToken               = errors.New("No token")
	ErrInvalidCredentials    = errors.New("Invalid credentials")
	ErrUserBlocked           = errors.New("User is blocked")
)
