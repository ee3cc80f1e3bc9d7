package identity

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/pkg/errcode"
)

// ParseError is returned when identity data cannot be parsed.
func ParseError(err error) error {
	msg := `Cannot parse identity corrections and overrides

<em>How to fix:</em>
  1. Check YAML syntax of identity.yaml in the config directory
  2. Remove the file to restore the default version`

	return &gn.Error{
		Code: errcode.IdentityFileParseError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot parse identity data: %w", err),
	}
}
