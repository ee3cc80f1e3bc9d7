package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

// CreateLogFileError is returned when LogFile cannot be opened. The
// message suggests switching log.destination to stderr.
func CreateLogFileError(path string, err error) error {
	msg := "Cannot open tjdelta log <em>%s</em>, " +
		"set <em>log.destination</em> to stderr to log to the terminal"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), LogFile, err),
	}
}
