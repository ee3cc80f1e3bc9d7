package iochadwick

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func ParseError(path string, err error) error {
	msg := "Cannot read people register <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.PeopleParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse people register %s: %w", path, err),
	}
}
