package home

import (
	"net/http"

	"github.com/textdata/web/internal/web/platform/pagerender"
	"github.com/textdata/web/internal/web/platform/weberror"
	"github.com/textdata/web/internal/web/templates"
)

type handlers struct{}

func (handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := pagerender.Page{
		Title:    templates.HomeTitle,
		Fragment: templates.HomePage(),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, http.StatusInternalServerError)
	}
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound)
}
