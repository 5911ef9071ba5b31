package releaselog

import (
	"net/http"

	"github.com/textdata/web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ReleaseLog, h.handleIndex)
}
