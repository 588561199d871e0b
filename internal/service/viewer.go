package service

import (
	"errors"
	"net/http"
	"net/url"
	"path"

	"github.com/Totarae/MediaViewer/internal/media"
	"github.com/Totarae/MediaViewer/internal/model"
	"go.uber.org/zap"
)

// RequestError ошибка клиента, которую транспорт переводит в код ответа.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	return e.Detail
}

var (
	// ErrMissingParameter media_url не передан или пуст.
	ErrMissingParameter = &RequestError{Status: http.StatusBadRequest, Detail: "media_url parameter is required"}
	// ErrUnsupportedFormat по URL не удалось определить ни видео, ни изображение.
	ErrUnsupportedFormat = &RequestError{Status: http.StatusBadRequest, Detail: "Unsupported media format"}
)

// AsRequestError достаёт RequestError из цепочки ошибок.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

type ViewerService struct {
	Logger *zap.Logger
}

func NewViewerService(logger *zap.Logger) *ViewerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewerService{Logger: logger}
}

// Resolve классифицирует ссылку и собирает данные для страницы просмотра.
// URL возвращается без изменений.
func (s *ViewerService) Resolve(mediaURL string) (*model.View, error) {
	if mediaURL == "" {
		return nil, ErrMissingParameter
	}

	category := media.Classify(mediaURL)
	s.Logger.Debug("media classified",
		zap.String("media_url", mediaURL),
		zap.Stringer("media_type", category),
	)
	if category == media.Unknown {
		return nil, ErrUnsupportedFormat
	}

	return &model.View{
		MediaURL:  mediaURL,
		MediaType: category.String(),
		Title:     titleOf(mediaURL),
	}, nil
}

// titleOf возвращает последний сегмент пути для заголовка страницы.
func titleOf(mediaURL string) string {
	p := mediaURL
	if u, err := url.Parse(mediaURL); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(p)
	if base == "." || base == "/" {
		return mediaURL
	}
	if unescaped, err := url.PathUnescape(base); err == nil {
		return unescaped
	}
	return base
}
