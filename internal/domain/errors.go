package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenRevoked       = errors.New("token revoked")

	ErrImageNotFound            = errors.New("image not found")
	ErrTransformedImageNotFound = errors.New("transformed image not found")
	ErrAccessDenied             = errors.New("access denied")
	ErrImageHasTransformations  = errors.New("image has transformations")
	ErrInvalidStorageKey        = errors.New("invalid storage key")
	ErrUnsupportedContentType   = errors.New("unsupported content type")
	ErrInvalidFileSize          = errors.New("invalid file size")
	ErrInvalidFilename          = errors.New("invalid filename")

	// Transformation pipeline failures. ErrTransformationFailed is always joined
	// with one of the more specific kinds below and the underlying cause.
	ErrTransformationFailed = errors.New("transformation failed")
	ErrInvalidOptions       = errors.New("invalid transformation options")
	ErrDecodeFailed         = errors.New("image decode failed")
	ErrEncodeFailed         = errors.New("image encode failed")
	ErrStorageFailure       = errors.New("storage failure")
	ErrRepositoryFailure    = errors.New("repository failure")
)
