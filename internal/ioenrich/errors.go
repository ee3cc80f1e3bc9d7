package ioenrich

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

func CancelledError(err error) error {
	msg := "Enrichment was interrupted, computed values were saved"
	return &gn.Error{
		Code: errcode.EnrichCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("enrichment cancelled: %w", err),
	}
}
