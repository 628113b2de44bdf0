// Package static holds the stylesheet, scripts and images served under /static.
package static

import (
	"embed"
	"io/fs"
)

//go:embed styles.css js images
var files embed.FS

func FS() fs.FS {
	return files
}
