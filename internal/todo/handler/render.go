package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	sessionmodels "todolists/internal/session/models"
	"todolists/internal/todo/models"
	dErrors "todolists/pkg/domain-errors"
	"todolists/pkg/platform/httputil"
	"todolists/pkg/requestcontext"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageLists    = "lists"
	pageNewList  = "new_list"
	pageList     = "list"
	pageEditList = "edit_list"
)

type pages struct {
	byName map[string]*template.Template
}

func loadPages() (*pages, error) {
	p := &pages{byName: make(map[string]*template.Template)}
	for _, name := range []string{pageLists, pageNewList, pageList, pageEditList} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		p.byName[name] = t
	}
	return p, nil
}

// listView is a list prepared for display.
type listView struct {
	ID        int
	Name      string
	Complete  bool
	Remaining int
	Total     int
}

func newListView(l *models.List) listView {
	return listView{
		ID:        l.ID,
		Name:      l.Name,
		Complete:  models.IsListComplete(l),
		Remaining: l.TodosRemainingCount(),
		Total:     l.TodosCount(),
	}
}

type pageData struct {
	Title string
	Flash sessionmodels.Flash
	Error string
	Lists []listView
	List  *listView
	Todos []*models.Todo
	Name  string
}

func listPageData(l *models.List, todoName string) pageData {
	view := newListView(l)
	return pageData{
		Title: l.Name,
		List:  &view,
		Todos: models.SortByCompletion(l.Todos),
		Name:  todoName,
	}
}

// render executes page into a buffer and writes it with status. Pending
// flash messages are consumed only when the page renders.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, state *sessionmodels.State, data pageData) {
	t, ok := h.pages.byName[page]
	if !ok {
		h.renderFailed(w, r, fmt.Errorf("unknown page %q", page))
		return
	}
	data.Flash = state.Flash

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	state.Consume()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "failed to render page",
		"request_id", requestcontext.RequestID(r.Context()),
		"error", err,
	)
	httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "render failed"))
}
