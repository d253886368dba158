// Package static embeds the site's CSS, scripts and images.
package static

import "embed"

//go:embed styles.css js images
var FS embed.FS
