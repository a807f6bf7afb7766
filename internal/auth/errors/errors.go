package errors

import "errors"

var (
	ErrMissingSignupFields = errors.New("Missing required fields")
	ErrMissingCredentials  = errors.New("Email and password are required")
)

const (
	MsgSignupSucceeded = "User registered successfully"
	MsgLoginSucceeded  = "Login successful"
	MsgSignupFailed    = "Failed to create user account"
	MsgLoginFailed     = "Failed to login"
	MsgTokenFailed     = "Failed to get Amadeus token"
	MsgInvalidRequest  = "Invalid request body"
)
