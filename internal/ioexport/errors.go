package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func ExportError(step string, err error) error {
	msg := "Export to database failed at <em>%s</em>"
	vars := []any{step}
	return &gn.Error{
		Code: errcode.DBExportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("export %s: %w", step, err),
	}
}
