package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrZoneNotFound     = errors.New("delivery zone not found")
	ErrCategoryInUse    = errors.New("category still has foods")
	ErrDuplicateName    = errors.New("name already exists")
	ErrInvalidInput     = errors.New("invalid input")
)
