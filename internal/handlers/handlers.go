package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Totarae/MediaViewer/internal/model"
	"github.com/Totarae/MediaViewer/internal/render"
	"github.com/Totarae/MediaViewer/internal/service"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ViewerTemplate имя шаблона страницы просмотра.
const ViewerTemplate = "media_viewer.html"

// Handler обрабатывает HTTP-запросы страницы просмотра.
type Handler struct {
	Service  *service.ViewerService
	Renderer render.Renderer
	Logger   *zap.Logger
}

func NewHandler(svc *service.ViewerService, renderer render.Renderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Service:  svc,
		Renderer: renderer,
		Logger:   logger,
	}
}

// ViewMedia отдаёт страницу просмотра для ссылки из параметра media_url.
func (h *Handler) ViewMedia(res http.ResponseWriter, req *http.Request) {
	mediaURL := lastValue(req.URL.Query()["media_url"])

	view, err := h.Service.Resolve(mediaURL)
	if err != nil {
		h.writeError(res, req, err)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.Render(res, ViewerTemplate, view); err != nil {
		h.Logger.Error("failed to render viewer",
			zap.String("request_id", middleware.GetReqID(req.Context())),
			zap.Error(err),
		)
		h.writeJSON(res, http.StatusInternalServerError, model.ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)})
	}
}

// lastValue при повторе параметра берёт последнее значение.
func lastValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// Health всегда отвечает {"status":"ok"}.
func (h *Handler) Health(res http.ResponseWriter, _ *http.Request) {
	h.writeJSON(res, http.StatusOK, model.HealthResponse{Status: "ok"})
}

// writeError переводит ошибку сервиса в код и тело ответа.
func (h *Handler) writeError(res http.ResponseWriter, req *http.Request, err error) {
	if reqErr, ok := service.AsRequestError(err); ok {
		h.writeJSON(res, reqErr.Status, model.ErrorResponse{Detail: reqErr.Detail})
		return
	}

	h.Logger.Error("unexpected error",
		zap.String("request_id", middleware.GetReqID(req.Context())),
		zap.Error(err),
	)
	h.writeJSON(res, http.StatusInternalServerError, model.ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)})
}

func (h *Handler) writeJSON(res http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		h.Logger.Error("failed to marshal response", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	res.Write(data)
}
