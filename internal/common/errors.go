package common

import "errors"

var (
	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorInvalidValue  = errors.New("value out of range")

	// auth specific errors
	ErrorInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrorUnauthorized       = errors.New("authentication credentials were not provided")
	ErrorInvalidToken       = errors.New("invalid token")
	ErrorInactiveUser       = errors.New("user inactive or deleted")

	// upload specific errors
	ErrorInvalidImage = errors.New("upload a valid image")
	ErrorFileTooLarge = errors.New("file too large")
)
