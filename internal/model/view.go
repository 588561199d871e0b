package model

// View данные, которые передаются в шаблон страницы просмотра.
type View struct {
	MediaURL  string
	MediaType string
	Title     string
}

// IsVideo нужен шаблону для выбора ветки плеера.
func (v View) IsVideo() bool {
	return v.MediaType == "video"
}
