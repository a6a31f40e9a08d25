// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping jasper.
package boot

import _ "embed" // Blank import required by embed.

//go:embed core.jr
var script string //nolint:gochecknoglobals

// Script returns the prelude evaluated into every new root environment.
func Script() string {
	return script
}
