// Package web holds the HTML templates compiled into the binary.
package web

import "embed"

//go:embed template/*.html
var Templates embed.FS
