package imagelink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	b := NewBuilder("http://shop.example/img")

	assert.Equal(t,
		"http://shop.example/img/11-small_default/printed-mug.jpg",
		b.ImageURL("printed-mug", 11, SizeSmallDefault))
}

func TestImageURL_TrimsTrailingSlash(t *testing.T) {
	b := NewBuilder("http://shop.example/img/")

	assert.Equal(t,
		"http://shop.example/img/3-home_default/mug.jpg",
		b.ImageURL("mug", 3, "home_default"))
}
