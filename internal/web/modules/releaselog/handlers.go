package releaselog

import (
	"net/http"

	changelog "github.com/textdata/web/internal/releaselog"
	"github.com/textdata/web/internal/web/platform/pagerender"
	"github.com/textdata/web/internal/web/platform/weberror"
	"github.com/textdata/web/internal/web/templates"
)

type handlers struct{}

func (handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := pagerender.Page{
		Title:    templates.ReleaseLogTitle,
		Fragment: templates.ReleaseLogPage(changelog.Entries),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, http.StatusInternalServerError)
	}
}
