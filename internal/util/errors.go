package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrNoAnswersSubmitted  = errors.New("no answers submitted")
	ErrNoGradableQuestions = errors.New("none of the submitted questions have a recorded correct option")
)
