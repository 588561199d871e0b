package media_test

import (
	"fmt"

	"github.com/Totarae/MediaViewer/internal/media"
)

// ExampleClassify демонстрирует порядок правил: явные расширения, затем MIME-тип.
func ExampleClassify() {
	fmt.Println(media.Classify("https://example.com/clip.MP4?autoplay=1"))
	fmt.Println(media.Classify("https://example.com/pic.webp"))
	fmt.Println(media.Classify("https://example.com/doc.pdf"))

	// Output:
	// video
	// image
	// unknown
}
