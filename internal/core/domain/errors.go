package domain

import "errors"

// ErrPhotoNotFound is an error thrown when a photo does not exist
var ErrPhotoNotFound = errors.New("photo not found")

// ErrMissingPhotoFields is an error thrown when publicId, url or takenAt is missing
var ErrMissingPhotoFields = errors.New("missing required fields: publicId, url, takenAt")

// ErrNothingToUpdate is an error thrown when a photo patch carries no field
var ErrNothingToUpdate = errors.New("nothing to update")

// ErrVideoJobNotFound is an error thrown when a video job does not exist
var ErrVideoJobNotFound = errors.New("video job not found")

// ErrVideoFileNotFound is an error thrown when a rendered file is not on disk
var ErrVideoFileNotFound = errors.New("file not found")

// ErrMissingDateRange is an error thrown when one of the range endpoints is missing
var ErrMissingDateRange = errors.New("missing required fields: dateFrom, dateTo")

// ErrInvalidDateRange is an error thrown when the range start is after its end
var ErrInvalidDateRange = errors.New("dateFrom must be before dateTo")

// ErrInvalidTransition is an error thrown when a job status change is not allowed
var ErrInvalidTransition = errors.New("invalid job status transition")

// ErrInvalidFolder is an error thrown when an upload folder contains forbidden characters
var ErrInvalidFolder = errors.New("invalid upload folder")

// ErrUnauthorized is an error thrown when a password or a session is rejected
var ErrUnauthorized = errors.New("unauthorized")

// ErrTooManyAttempts is an error thrown when login attempts exceed the window budget
var ErrTooManyAttempts = errors.New("too many login attempts")
