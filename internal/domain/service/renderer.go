package service

import "scout/internal/domain/entity"

// ViewRenderer is the port to the map rendering surface. The real widget
// lives in the browser SDK; server-side implementations observe camera
// changes (logging, push channels) without owning any view state.
type ViewRenderer interface {
	RenderView(view entity.ViewState)
}
