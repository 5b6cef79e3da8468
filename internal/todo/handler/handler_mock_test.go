package handler

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sessionmodels "todolists/internal/session/models"
	"todolists/internal/todo/handler/mocks"
	"todolists/internal/todo/models"
	dErrors "todolists/pkg/domain-errors"
	"todolists/pkg/testutil"
)

// newMockRouter serves h with state injected directly into the context.
func newMockRouter(t *testing.T, svc Service, state *sessionmodels.State) http.Handler {
	t.Helper()
	h, err := New(svc, discardLogger())
	require.NoError(t, err)

	r := chi.NewRouter()
	if state != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(sessionmodels.WithState(r.Context(), state)))
			})
		})
	}
	h.Register(r)
	return r
}

func TestHandlerPassesSessionListsToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	state := sessionmodels.NewState()
	router := newMockRouter(t, svc, state)

	svc.EXPECT().
		CreateList(gomock.Any(), &state.Lists, "Errands").
		Return(&models.List{ID: 1, Name: "Errands"}, nil)

	rr := testutil.DoRequest(router, testutil.NewFormRequest(t, http.MethodPost, "/lists", url.Values{"list_name": {"Errands"}}))
	testutil.AssertRedirect(t, rr, "/lists")
	assert.Equal(t, flashListCreated, state.Flash.Success)
}

func TestHandlerServiceFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	state := sessionmodels.NewState()
	router := newMockRouter(t, svc, state)
	list := &models.List{ID: 3, Name: "Work"}

	svc.EXPECT().FindList(gomock.Any(), &state.Lists, 3).Return(list, nil)
	svc.EXPECT().CompleteAll(gomock.Any(), &state.Lists, 3).Return(errors.New("boom"))

	rr := testutil.DoRequest(router, testutil.NewFormRequest(t, http.MethodPost, "/lists/3/complete_all", url.Values{}))
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	testutil.AssertErrorCode(t, rr, string(dErrors.CodeInternal))
	assert.NotContains(t, rr.Body.String(), "boom")
}

func TestHandlerToggleParsesCompletedFlag(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "false", want: false},
		{value: "", want: false},
	}
	for _, tt := range tests {
		t.Run("completed="+tt.value, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockService(ctrl)
			state := sessionmodels.NewState()
			router := newMockRouter(t, svc, state)
			list := &models.List{ID: 1, Name: "Groceries"}

			svc.EXPECT().FindList(gomock.Any(), gomock.Any(), 1).Return(list, nil)
			svc.EXPECT().SetTodoCompleted(gomock.Any(), gomock.Any(), 1, 5, tt.want).Return(nil)

			rr := testutil.DoRequest(router, testutil.NewFormRequest(t, http.MethodPost, "/lists/1/todos/5", url.Values{"completed": {tt.value}}))
			testutil.AssertRedirect(t, rr, "/lists/1")
		})
	}
}

func TestHandlerNonNumericTodoIDSkipsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	state := sessionmodels.NewState()
	router := newMockRouter(t, svc, state)

	svc.EXPECT().FindList(gomock.Any(), gomock.Any(), 1).Return(&models.List{ID: 1, Name: "Groceries"}, nil)

	rr := testutil.DoRequest(router, testutil.NewFormRequest(t, http.MethodPost, "/lists/1/todos/x/destroy", url.Values{}))
	testutil.AssertRedirect(t, rr, "/lists/1")
	assert.Equal(t, models.MsgTodoNotFound, state.Flash.Info)
	assert.Empty(t, state.Flash.Error)
}

func TestHandlerWithoutSessionState(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newMockRouter(t, mocks.NewMockService(ctrl), nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/lists"))
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	testutil.AssertErrorCode(t, rr, string(dErrors.CodeInternal))
}
