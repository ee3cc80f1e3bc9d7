package ioregister

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func ParseError(path string, err error) error {
	msg := "Cannot read register file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RegisterParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse register %s: %w", path, err),
	}
}
