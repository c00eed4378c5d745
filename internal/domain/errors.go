package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrEventFull           = errors.New("event is full")
	ErrMeetingNotActive    = errors.New("meeting is not active")
	ErrMeetingAlreadyEnded = errors.New("meeting has already ended")
	ErrEventNotEnded       = errors.New("event has not ended yet")
	ErrAlreadyLeft         = errors.New("attendee has already left")
	ErrWrongPIN            = errors.New("wrong event pin")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
