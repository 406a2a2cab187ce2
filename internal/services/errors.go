package services

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTaskNotFound  = errors.New("task not found")
	ErrUsernameTaken = errors.New("username already exists")
)
