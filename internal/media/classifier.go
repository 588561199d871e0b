// Package media определяет категорию медиа по ссылке.
package media

import (
	"mime"
	"path"
	"strings"
)

// Category категория медиа, выведенная из URL.
type Category int

const (
	Unknown Category = iota
	Video
	Image
)

// String возвращает имя категории в том виде, в котором его ждёт шаблон.
func (c Category) String() string {
	switch c {
	case Video:
		return "video"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

var (
	videoExtensions = []string{".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mkv", ".m4v"}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg"}
)

// extraTypes дополняет mime.TypeByExtension, чтобы результат не зависел от /etc/mime.types хоста.
var extraTypes = map[string]string{
	".ogv":  "video/ogg",
	".3gp":  "video/3gpp",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".ts":   "video/mp2t",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".ico":  "image/vnd.microsoft.icon",
	".avif": "image/avif",
	".heic": "image/heic",
}

// encodingSuffixes сжатие поверх файла: scan.tiff.gz остаётся изображением.
var encodingSuffixes = map[string]bool{
	".gz":  true,
	".z":   true,
	".bz2": true,
	".xz":  true,
	".br":  true,
}

// Classify определяет категорию медиа по URL.
//
// Сначала проверяются явные списки расширений видео и изображений по пути URL
// (без учёта регистра, query и fragment отбрасываются), затем MIME-тип,
// выведенный из расширения исходной строки. Функция не возвращает ошибок:
// всё, что не удалось распознать, получает Unknown.
func Classify(raw string) Category {
	p := strings.ToLower(pathOf(raw))

	for _, ext := range videoExtensions {
		if strings.HasSuffix(p, ext) {
			return Video
		}
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(p, ext) {
			return Image
		}
	}

	return fromMIME(guessType(raw))
}

// pathOf вырезает путь из строки без декодирования и без проверки экранирования:
// схема и authority отбрасываются, путь заканчивается на первом ? или #,
// параметры последнего сегмента (;jsessionid=...) тоже отбрасываются.
// Строгий url.Parse не подходит: он отвергает одиночный % и декодирует %2E.
func pathOf(raw string) string {
	rest := raw
	if i := strings.IndexByte(rest, ':'); i > 0 && isScheme(rest[:i]) {
		rest = rest[i+1:]
	}
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			rest = rest[i:]
		} else {
			rest = ""
		}
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	last := strings.LastIndexByte(rest, '/')
	if i := strings.IndexByte(rest[last+1:], ';'); i >= 0 {
		rest = rest[:last+1+i]
	}
	return rest
}

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// guessType выводит MIME-тип по расширению необработанной строки.
func guessType(raw string) string {
	ext := path.Ext(raw)
	if strings.EqualFold(ext, ".svgz") {
		return "image/svg+xml"
	}
	if encodingSuffixes[strings.ToLower(ext)] {
		ext = path.Ext(strings.TrimSuffix(raw, ext))
	}
	if ext == "" {
		return ""
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return extraTypes[strings.ToLower(ext)]
}

func fromMIME(mimeType string) Category {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return Video
	case strings.HasPrefix(mimeType, "image/"):
		return Image
	default:
		return Unknown
	}
}
