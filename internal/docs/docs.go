// Package docs bundles the user guide shown by `proteus docs`.
package docs

import _ "embed"

//go:embed guide.md
var guide string

// Guide returns the bundled user guide as markdown.
func Guide() string {
	return guide
}
