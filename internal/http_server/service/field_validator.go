// Package service
package service

import (
	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := len(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

func (v *FieldValidator) CheckInt(value int) *ApiStatus {
	if value > v.Max {
		return v.ErrLong
	}
	if value < v.Min {
		return v.ErrShort
	}
	return nil
}

var (
	usernameValidator *FieldValidator
	passwordValidator *FieldValidator
	tailNoValidator   *FieldValidator
)

func InitValidator(config *c.HttpServerLimit) {
	usernameValidator = &FieldValidator{
		Min:      config.UsernameLengthMin,
		Max:      config.UsernameLengthMax,
		ErrShort: &ApiStatus{StatusName: "USERNAME_TOO_SHORT", Description: "username too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "USERNAME_TOO_LONG", Description: "username too long", HttpCode: BadRequest},
	}
	passwordValidator = &FieldValidator{
		Min:      config.PasswordLengthMin,
		Max:      config.PasswordLengthMax,
		ErrShort: &ApiStatus{StatusName: "PASSWORD_TOO_SHORT", Description: "password too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PASSWORD_TOO_LONG", Description: "password too long", HttpCode: BadRequest},
	}
	tailNoValidator = &FieldValidator{
		Min:      1,
		Max:      config.TailNoLengthMax,
		ErrShort: &ApiStatus{StatusName: "TAIL_NO_TOO_SHORT", Description: "tail number cannot be empty", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "TAIL_NO_TOO_LONG", Description: "tail number too long", HttpCode: BadRequest},
	}
}
