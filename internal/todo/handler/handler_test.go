package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolists/internal/platform/middleware"
	sessionmw "todolists/internal/session/middleware"
	"todolists/internal/session/store"
	"todolists/internal/todo/service"
	"todolists/pkg/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTodoRouter wires the real service behind an in-memory session store.
func newTodoRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := discardLogger()
	h, err := New(service.New(service.WithLogger(logger)), logger)
	require.NoError(t, err)

	sessions := sessionmw.New(store.NewInMemory(), sessionmw.Config{
		Secret: "test-secret",
		TTL:    time.Hour,
	}, logger, nil)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RequestTime, sessions.Middleware)
	h.Register(r)
	return r
}

func form(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}

func TestRootRedirectsToLists(t *testing.T) {
	b := testutil.NewBrowser(t, newTodoRouter(t))
	rr := b.Get("/")
	testutil.AssertStatus(t, rr, http.StatusFound)
	testutil.AssertRedirect(t, rr, "/lists")
}

func TestGroceriesScenario(t *testing.T) {
	b := testutil.NewBrowser(t, newTodoRouter(t))

	testutil.Scenario(t,
		testutil.Given("an empty session", func(t *testing.T) {
			rr := b.Get("/lists")
			testutil.AssertStatus(t, rr, http.StatusOK)
			testutil.AssertBodyContains(t, rr, "You have no lists yet.")
			require.NotNil(t, b.Cookie(sessionmw.CookieName))
		}),
		testutil.When("the user creates Groceries", func(t *testing.T) {
			rr := b.PostForm("/lists", form("list_name", "  Groceries  "))
			testutil.AssertRedirect(t, rr, "/lists")
		}),
		testutil.Then("the index shows the list and the flash once", func(t *testing.T) {
			rr := b.Get("/lists")
			testutil.AssertBodyContains(t, rr, "The list has been created.", "<h2>Groceries</h2>", "0 / 0")

			again := b.Get("/lists")
			assert.NotContains(t, again.Body.String(), "The list has been created.")
		}),
		testutil.When("two todos are added and Milk is completed", func(t *testing.T) {
			testutil.AssertRedirect(t, b.PostForm("/lists/1/todos", form("todo", "Milk")), "/lists/1")
			testutil.AssertRedirect(t, b.PostForm("/lists/1/todos", form("todo", "Eggs")), "/lists/1")
			testutil.AssertRedirect(t, b.PostForm("/lists/1/todos/1", form("completed", "true")), "/lists/1")
		}),
		testutil.Then("incomplete todos are listed first", func(t *testing.T) {
			rr := b.Get("/lists/1")
			testutil.AssertStatus(t, rr, http.StatusOK)
			body := rr.Body.String()
			eggs := strings.Index(body, "<h3>Eggs</h3>")
			milk := strings.Index(body, "<h3>Milk</h3>")
			require.NotEqual(t, -1, eggs)
			require.NotEqual(t, -1, milk)
			assert.Less(t, eggs, milk)
			assert.Contains(t, body, "1 / 2")
		}),
		testutil.When("every todo is completed", func(t *testing.T) {
			testutil.AssertRedirect(t, b.PostForm("/lists/1/complete_all", url.Values{}), "/lists/1")
		}),
		testutil.Then("the list is shown as complete", func(t *testing.T) {
			rr := b.Get("/lists")
			testutil.AssertBodyContains(t, rr, `<li class="complete">`, "0 / 2")
		}),
	)
}

func TestCreateListValidation(t *testing.T) {
	b := testutil.NewBrowser(t, newTodoRouter(t))

	t.Run("blank name re-renders the form", func(t *testing.T) {
		rr := b.PostForm("/lists", form("list_name", "   "))
		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		testutil.AssertBodyContains(t, rr, "The list name must be between 1 and 100 characters.", `action="/lists"`)
	})

	t.Run("duplicate name keeps the typed value", func(t *testing.T) {
		testutil.AssertRedirect(t, b.PostForm("/lists", form("list_name", "Work")), "/lists")
		rr := b.PostForm("/lists", form("list_name", "Work"))
		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		testutil.AssertBodyContains(t, rr, "List name must be unique.", `value="Work"`)
	})

	t.Run("names are escaped on render", func(t *testing.T) {
		rr := b.PostForm("/lists", form("list_name", strings.Repeat("<", 101)))
		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		assert.NotContains(t, rr.Body.String(), "<<<")
	})
}

func TestUnknownListRedirectsWithFlash(t *testing.T) {
	for _, path := range []string{"/lists/99", "/lists/abc", "/lists/99/edit"} {
		t.Run(path, func(t *testing.T) {
			b := testutil.NewBrowser(t, newTodoRouter(t))
			testutil.AssertRedirect(t, b.Get(path), "/lists")
			testutil.AssertBodyContains(t, b.Get("/lists"), `<div class="flash info"><p>The specified list was not found.</p></div>`)
		})
	}
}

func TestFormBodies(t *testing.T) {
	t.Run("malformed url-encoded body is a bad request", func(t *testing.T) {
		b := testutil.NewBrowser(t, newTodoRouter(t))
		req := httptest.NewRequest(http.MethodPost, "/lists", strings.NewReader("list_name=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rr := b.Do(req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "bad_request")
		testutil.AssertBodyContains(t, b.Get("/lists"), "You have no lists yet.")
	})

	t.Run("oversized body is a bad request", func(t *testing.T) {
		b := testutil.NewBrowser(t, newTodoRouter(t))
		rr := b.PostForm("/lists", form("list_name", strings.Repeat("a", maxFormBytes+1)))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("multipart body is accepted", func(t *testing.T) {
		b := testutil.NewBrowser(t, newTodoRouter(t))
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("list_name", "Errands"))
		require.NoError(t, mw.Close())
		req := httptest.NewRequest(http.MethodPost, "/lists", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		testutil.AssertRedirect(t, b.Do(req), "/lists")
		testutil.AssertBodyContains(t, b.Get("/lists"), "<h2>Errands</h2>")
	})
}

func TestRenameList(t *testing.T) {
	b := testutil.NewBrowser(t, newTodoRouter(t))
	b.PostForm("/lists", form("list_name", "Work"))
	b.PostForm("/lists", form("list_name", "Home"))

	t.Run("edit form is prefilled", func(t *testing.T) {
		rr := b.Get("/lists/1/edit")
		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertBodyContains(t, rr, `value="Work"`)
	})

	t.Run("keeping the same name succeeds", func(t *testing.T) {
		testutil.AssertRedirect(t, b.PostForm("/lists/1", form("list_name", "Work")), "/lists/1")
	})

	t.Run("renaming to another list's name fails", func(t *testing.T) {
		rr := b.PostForm("/lists/1", form("list_name", "Home"))
		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		testutil.AssertBodyContains(t, rr, "List name must be unique.")
	})

	t.Run("rename shows the updated flash", func(t *testing.T) {
		testutil.AssertRedirect(t, b.PostForm("/lists/1", form("list_name", "Chores")), "/lists/1")
		testutil.AssertBodyContains(t, b.Get("/lists/1"), "The list has been updated.", "<h2>Chores</h2>")
	})
}

func TestDeleteList(t *testing.T) {
	t.Run("xhr gets the index path", func(t *testing.T) {
		b := testutil.NewBrowser(t, newTodoRouter(t))
		b.PostForm("/lists", form("list_name", "Work"))

		rr := b.PostXHR("/lists/1/destroy")
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, "/lists", rr.Body.String())
		testutil.AssertBodyContains(t, b.Get("/lists"), "You have no lists yet.")
	})

	t.Run("form post redirects with a flash", func(t *testing.T) {
		b := testutil.NewBrowser(t, newTodoRouter(t))
		b.PostForm("/lists", form("list_name", "Work"))

		testutil.AssertRedirect(t, b.PostForm("/lists/1/destroy", url.Values{}), "/lists")
		testutil.AssertBodyContains(t, b.Get("/lists"), "The list has been deleted.")
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		b := testutil.NewBrowser(t, newTodoRouter(t))
		b.PostForm("/lists", form("list_name", "One"))
		b.PostForm("/lists", form("list_name", "Two"))
		b.PostXHR("/lists/2/destroy")
		b.PostForm("/lists", form("list_name", "Three"))

		testutil.AssertBodyContains(t, b.Get("/lists/3"), "<h2>Three</h2>")
	})
}

func TestTodoEndpoints(t *testing.T) {
	b := testutil.NewBrowser(t, newTodoRouter(t))
	b.PostForm("/lists", form("list_name", "Groceries"))
	b.PostForm("/lists/1/todos", form("todo", "Milk"))

	t.Run("empty todo re-renders the list", func(t *testing.T) {
		rr := b.PostForm("/lists/1/todos", form("todo", ""))
		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		testutil.AssertBodyContains(t, rr, "Todo must be between 1 and 100 characters.", "<h3>Milk</h3>")
	})

	t.Run("toggling an unknown todo redirects to the list", func(t *testing.T) {
		testutil.AssertRedirect(t, b.PostForm("/lists/1/todos/42", form("completed", "true")), "/lists/1")
		testutil.AssertBodyContains(t, b.Get("/lists/1"), "The specified todo was not found.")
	})

	t.Run("adding to an unknown list redirects to the index", func(t *testing.T) {
		testutil.AssertRedirect(t, b.PostForm("/lists/7/todos", form("todo", "Bread")), "/lists")
	})

	t.Run("xhr delete answers no content", func(t *testing.T) {
		rr := b.PostXHR("/lists/1/todos/1/destroy")
		testutil.AssertStatus(t, rr, http.StatusNoContent)
		assert.NotContains(t, b.Get("/lists/1").Body.String(), "<h3>Milk</h3>")
	})

	t.Run("deleting a missing todo still redirects", func(t *testing.T) {
		testutil.AssertRedirect(t, b.PostForm("/lists/1/todos/1/destroy", url.Values{}), "/lists/1")
		testutil.AssertBodyContains(t, b.Get("/lists/1"), "The todo has been deleted.")
	})
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newTodoRouter(t)
	alice := testutil.NewBrowser(t, router)
	bob := testutil.NewBrowser(t, router)

	alice.PostForm("/lists", form("list_name", "Private"))

	assert.Contains(t, alice.Get("/lists").Body.String(), "<h2>Private</h2>")
	assert.NotContains(t, bob.Get("/lists").Body.String(), "<h2>Private</h2>")
}

type stubChecker struct{ err error }

func (s stubChecker) Health(context.Context) error { return s.err }

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		checker HealthChecker
		status  int
		want    string
	}{
		{name: "no checker", checker: nil, status: http.StatusOK, want: "ok"},
		{name: "healthy store", checker: stubChecker{}, status: http.StatusOK, want: "ok"},
		{name: "store down", checker: stubChecker{err: errors.New("dial tcp: refused")}, status: http.StatusServiceUnavailable, want: "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.DoRequest(Health(tt.checker, discardLogger()), testutil.NewRequest(t, http.MethodGet, "/healthz"))
			testutil.AssertStatus(t, rr, tt.status)
			resp := testutil.UnmarshalResponse[healthResponse](t, rr)
			assert.Equal(t, tt.want, resp.Status)
		})
	}
}
