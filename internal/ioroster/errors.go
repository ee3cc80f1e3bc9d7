package ioroster

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func ParseError(path string, err error) error {
	msg := "Cannot parse roster <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RosterParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse roster %s: %w", path, err),
	}
}

func MissingColumnError(path, col string) error {
	msg := "Roster <em>%s</em> has no <em>%s</em> column"
	vars := []any{path, col}
	return &gn.Error{
		Code: errcode.RosterParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("roster %s: missing column %q", path, col),
	}
}

func EmptyError(path string) error {
	msg := "Roster <em>%s</em> has no pitchers with an injury year"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RosterEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("roster %s: no usable rows", path),
	}
}
