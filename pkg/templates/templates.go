// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application configuration.
//
//go:embed config.yaml
var ConfigYAML string

// IdentityYAML contains name corrections and manual identifier overrides
// used by the identity resolver.
//
//go:embed identity.yaml
var IdentityYAML string
