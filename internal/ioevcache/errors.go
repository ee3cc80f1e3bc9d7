package ioevcache

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func OpenError(path string, err error) error {
	msg := "Cannot open pitch event cache <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.CacheOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open cache %s: %w", path, err),
	}
}

func ReadError(id int, err error) error {
	msg := "Cannot read cached pitch events of player <em>%d</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.CacheReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read cache for %d: %w", id, err),
	}
}

func WriteError(id int, err error) error {
	msg := "Cannot cache pitch events of player <em>%d</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.CacheWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write cache for %d: %w", id, err),
	}
}
