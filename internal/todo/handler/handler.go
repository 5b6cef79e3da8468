// Package handler serves the HTML pages and form endpoints for lists and
// todos. Every handler works on the session state placed in the request
// context by the session middleware.
package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	sessionmodels "todolists/internal/session/models"
	"todolists/internal/todo/models"
	dErrors "todolists/pkg/domain-errors"
	"todolists/pkg/platform/httputil"
	"todolists/pkg/requestcontext"
)

const (
	flashListCreated   = "The list has been created."
	flashListUpdated   = "The list has been updated."
	flashListDeleted   = "The list has been deleted."
	flashTodoAdded     = "The todo was added."
	flashTodoDeleted   = "The todo has been deleted."
	flashTodoUpdated   = "The todo has been updated."
	flashAllCompleted  = "All todos have been completed."
	xhrHeader          = "X-Requested-With"
	xhrValue           = "XMLHttpRequest"
	listsPath          = "/lists"
	formListName       = "list_name"
	formTodoName       = "todo"
	formTodoCompleted  = "completed"
	maxFormBytes       = 1 << 16
)

// Service is the todo domain port used by the handlers.
type Service interface {
	CreateList(ctx context.Context, lists *models.Lists, name string) (*models.List, error)
	FindList(ctx context.Context, lists *models.Lists, id int) (*models.List, error)
	RenameList(ctx context.Context, lists *models.Lists, id int, name string) error
	DeleteList(ctx context.Context, lists *models.Lists, id int)
	AddTodo(ctx context.Context, lists *models.Lists, listID int, name string) (*models.Todo, error)
	DeleteTodo(ctx context.Context, lists *models.Lists, listID, todoID int) error
	SetTodoCompleted(ctx context.Context, lists *models.Lists, listID, todoID int, completed bool) error
	CompleteAll(ctx context.Context, lists *models.Lists, listID int) error
}

// Handler renders list pages and applies form submissions.
type Handler struct {
	service Service
	logger  *slog.Logger
	pages   *pages
}

// New creates a Handler. It fails only if the embedded templates do not
// parse.
func New(service Service, logger *slog.Logger) (*Handler, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}
	return &Handler{service: service, logger: logger, pages: p}, nil
}

// Register mounts the routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Route(listsPath, func(r chi.Router) {
		r.Get("/", h.withState(h.handleIndex))
		r.Post("/", h.withState(h.handleCreateList))
		r.Get("/new", h.withState(h.handleNewList))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.withState(h.handleShowList))
			r.Post("/", h.withState(h.handleRenameList))
			r.Get("/edit", h.withState(h.handleEditList))
			r.Post("/destroy", h.withState(h.handleDeleteList))
			r.Post("/complete_all", h.withState(h.handleCompleteAll))
			r.Post("/todos", h.withState(h.handleAddTodo))
			r.Post("/todos/{todo_id}", h.withState(h.handleToggleTodo))
			r.Post("/todos/{todo_id}/destroy", h.withState(h.handleDeleteTodo))
		})
	})
}

type stateHandler func(w http.ResponseWriter, r *http.Request, state *sessionmodels.State)

// withState resolves the session state or fails the request. Form bodies
// are parsed once here so handlers read already-validated values.
func (h *Handler) withState(next stateHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := sessionmodels.StateFrom(r.Context())
		if !ok {
			h.logger.ErrorContext(r.Context(), "session state missing from context",
				"request_id", requestcontext.RequestID(r.Context()),
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "session unavailable"))
			return
		}
		if r.Method == http.MethodPost {
			if err := parseForm(w, r); err != nil {
				h.logger.WarnContext(r.Context(), "rejecting malformed form body",
					"request_id", requestcontext.RequestID(r.Context()),
					"path", r.URL.Path,
					"error", err,
				)
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed form body"))
				return
			}
		}
		next(w, r, state)
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, listsPath, http.StatusFound)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	sorted := models.SortByCompletion(state.Lists.Items)
	views := make([]listView, 0, len(sorted))
	for _, l := range sorted {
		views = append(views, newListView(l))
	}
	h.render(w, r, http.StatusOK, pageLists, state, pageData{Title: "Lists", Lists: views})
}

func (h *Handler) handleNewList(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	h.render(w, r, http.StatusOK, pageNewList, state, pageData{Title: "New List"})
}

func (h *Handler) handleCreateList(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	name := formValue(r, formListName)
	if _, err := h.service.CreateList(r.Context(), &state.Lists, name); err != nil {
		h.rejectForm(w, r, state, err, pageNewList, pageData{Title: "New List", Name: name})
		return
	}
	state.Flash.Success = flashListCreated
	redirect(w, r, listsPath)
}

func (h *Handler) handleShowList(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	list, ok := h.loadList(w, r, state)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, pageList, state, listPageData(list, ""))
}

func (h *Handler) handleEditList(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	list, ok := h.loadList(w, r, state)
	if !ok {
		return
	}
	view := newListView(list)
	h.render(w, r, http.StatusOK, pageEditList, state, pageData{
		Title: "Edit " + list.Name,
		List:  &view,
		Name:  list.Name,
	})
}

func (h *Handler) handleRenameList(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	list, ok := h.loadList(w, r, state)
	if !ok {
		return
	}
	name := formValue(r, formListName)
	if err := h.service.RenameList(r.Context(), &state.Lists, list.ID, name); err != nil {
		view := newListView(list)
		h.rejectForm(w, r, state, err, pageEditList, pageData{Title: "Edit " + list.Name, List: &view, Name: name})
		return
	}
	state.Flash.Success = flashListUpdated
	redirect(w, r, listPath(list.ID))
}

func (h *Handler) handleDeleteList(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r, state, listsPath, models.MsgListNotFound)
		return
	}
	h.service.DeleteList(r.Context(), &state.Lists, id)
	if isXHR(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(listsPath))
		return
	}
	state.Flash.Success = flashListDeleted
	redirect(w, r, listsPath)
}

func (h *Handler) handleAddTodo(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	list, ok := h.loadList(w, r, state)
	if !ok {
		return
	}
	name := formValue(r, formTodoName)
	if _, err := h.service.AddTodo(r.Context(), &state.Lists, list.ID, name); err != nil {
		data := listPageData(list, name)
		h.rejectForm(w, r, state, err, pageList, data)
		return
	}
	state.Flash.Success = flashTodoAdded
	redirect(w, r, listPath(list.ID))
}

func (h *Handler) handleDeleteTodo(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	list, ok := h.loadList(w, r, state)
	if !ok {
		return
	}
	todoID, err := strconv.Atoi(chi.URLParam(r, "todo_id"))
	if err != nil {
		h.notFound(w, r, state, listPath(list.ID), models.MsgTodoNotFound)
		return
	}
	if err := h.service.DeleteTodo(r.Context(), &state.Lists, list.ID, todoID); err != nil {
		h.serviceFailure(w, r, state, err)
		return
	}
	if isXHR(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	state.Flash.Success = flashTodoDeleted
	redirect(w, r, listPath(list.ID))
}

func (h *Handler) handleToggleTodo(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	list, ok := h.loadList(w, r, state)
	if !ok {
		return
	}
	todoID, err := strconv.Atoi(chi.URLParam(r, "todo_id"))
	if err != nil {
		h.notFound(w, r, state, listPath(list.ID), models.MsgTodoNotFound)
		return
	}
	completed := formValue(r, formTodoCompleted) == "true"
	if err := h.service.SetTodoCompleted(r.Context(), &state.Lists, list.ID, todoID, completed); err != nil {
		if models.IsNotFound(err) {
			h.notFound(w, r, state, listPath(list.ID), dErrors.Message(err))
			return
		}
		h.serviceFailure(w, r, state, err)
		return
	}
	state.Flash.Success = flashTodoUpdated
	redirect(w, r, listPath(list.ID))
}

func (h *Handler) handleCompleteAll(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) {
	list, ok := h.loadList(w, r, state)
	if !ok {
		return
	}
	if err := h.service.CompleteAll(r.Context(), &state.Lists, list.ID); err != nil {
		h.serviceFailure(w, r, state, err)
		return
	}
	state.Flash.Success = flashAllCompleted
	redirect(w, r, listPath(list.ID))
}

// loadList resolves the {id} path parameter. Unparseable or unknown ids
// redirect to the index with an error flash.
func (h *Handler) loadList(w http.ResponseWriter, r *http.Request, state *sessionmodels.State) (*models.List, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r, state, listsPath, models.MsgListNotFound)
		return nil, false
	}
	list, err := h.service.FindList(r.Context(), &state.Lists, id)
	if err != nil {
		h.notFound(w, r, state, listsPath, models.MsgListNotFound)
		return nil, false
	}
	return list, true
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, state *sessionmodels.State, target, msg string) {
	h.logger.InfoContext(r.Context(), "resource not found",
		"request_id", requestcontext.RequestID(r.Context()),
		"path", r.URL.Path,
	)
	state.Flash.Info = msg
	redirect(w, r, target)
}

// rejectForm re-renders page with the validation message, or falls back to
// the generic failure path for anything else.
func (h *Handler) rejectForm(w http.ResponseWriter, r *http.Request, state *sessionmodels.State, err error, page string, data pageData) {
	switch {
	case models.IsValidation(err):
		h.logger.WarnContext(r.Context(), "form rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"path", r.URL.Path,
			"reason", err.Error(),
		)
		data.Error = dErrors.Message(err)
		h.render(w, r, http.StatusUnprocessableEntity, page, state, data)
	case models.IsNotFound(err):
		h.notFound(w, r, state, listsPath, models.MsgListNotFound)
	default:
		h.serviceFailure(w, r, state, err)
	}
}

func (h *Handler) serviceFailure(w http.ResponseWriter, r *http.Request, state *sessionmodels.State, err error) {
	if models.IsNotFound(err) {
		h.notFound(w, r, state, listsPath, models.MsgListNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), "todo operation failed",
		"request_id", requestcontext.RequestID(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "todo operation failed"))
}

// parseForm reads url-encoded and multipart bodies up to maxFormBytes.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return err
	}
	err := r.ParseMultipartForm(maxFormBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

// formValue reads a field parsed by withState.
func formValue(r *http.Request, key string) string {
	return r.PostForm.Get(key)
}

func isXHR(r *http.Request) bool {
	return r.Header.Get(xhrHeader) == xhrValue
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func listPath(id int) string {
	return listsPath + "/" + strconv.Itoa(id)
}
