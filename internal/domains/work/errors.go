package work

import "errors"

var (
	ErrWorkNotFound      = errors.New("work not found")
	ErrSlugAlreadyExists = errors.New("work slug already exists")
)
