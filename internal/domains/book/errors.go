package book

import "errors"

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrSlugAlreadyExists = errors.New("book slug already exists")
)
