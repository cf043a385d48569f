package domain

import "errors"

// ErrInvalidCredentials covers both "user not found" and "wrong password"
// so login responses cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrUserExists = errors.New("username or email already exists")

// ErrUserNotFound is internal to the store contract; login collapses it
// into ErrInvalidCredentials before it can reach a client.
var ErrUserNotFound = errors.New("user not found")

// ErrLocationNotFound is returned when the weather provider has no data
// for the requested location.
var ErrLocationNotFound = errors.New("location not found")
