package db

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflicting record")
	ErrInternal = errors.New("internal database error")
)

type DB interface {
	Users
	Posts
	Fed
}
