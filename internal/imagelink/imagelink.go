// Package imagelink derives public product image URLs from the image id
// and the product's link-rewrite slug.
package imagelink

import (
	"fmt"
	"strings"
)

// SizeSmallDefault is the image size used by cart views.
const SizeSmallDefault = "small_default"

// Builder builds image URLs below a fixed base URL.
type Builder struct {
	baseURL string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// ImageURL returns the URL of an image rendition, e.g.
// <base>/7-small_default/printed-mug.jpg.
func (b *Builder) ImageURL(linkRewrite string, imageID int, sizeName string) string {
	return fmt.Sprintf("%s/%d-%s/%s.jpg", b.baseURL, imageID, sizeName, linkRewrite)
}
