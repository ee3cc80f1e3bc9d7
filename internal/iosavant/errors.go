package iosavant

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func RequestError(id int, err error) error {
	msg := "Pitch-tracking request for player <em>%d</em> failed"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.TrackingRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("tracking request for %d: %w", id, err),
	}
}

func StatusError(id, status int, body string) error {
	msg := "Pitch-tracking source answered with status <em>%d</em>"
	vars := []any{status}
	return &gn.Error{
		Code: errcode.TrackingStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("tracking request for %d: status %d: %s",
			id, status, body),
	}
}

func ParseError(id int, err error) error {
	msg := "Cannot parse pitch-tracking data of player <em>%d</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.TrackingParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("tracking data for %d: %w", id, err),
	}
}
