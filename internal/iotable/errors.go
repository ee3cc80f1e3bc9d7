package iotable

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func LoadError(path string, err error) error {
	msg := "Cannot load enriched table from <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.TableParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot load table %s: %w", path, err),
	}
}

func SaveError(path string, err error) error {
	msg := "Cannot save enriched table to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.TableWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot save table %s: %w", path, err),
	}
}
