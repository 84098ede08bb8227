package domain

import "errors"

var (
	ErrInvalidInput  = errors.New("please enter valid weight and height")
	ErrEmptyUsername = errors.New("username is required")
	ErrNoData        = errors.New("no data available to plot")
)
