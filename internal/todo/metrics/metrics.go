package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks list and todo activity. A nil *Metrics records nothing.
type Metrics struct {
	ListsCreated       prometheus.Counter
	ListsDeleted       prometheus.Counter
	TodosAdded         prometheus.Counter
	TodosCompleted     prometheus.Counter
	ValidationFailures *prometheus.CounterVec
}

// New creates the todo metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ListsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "todolists_lists_created_total",
			Help: "Total number of lists created",
		}),
		ListsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "todolists_lists_deleted_total",
			Help: "Total number of lists deleted",
		}),
		TodosAdded: f.NewCounter(prometheus.CounterOpts{
			Name: "todolists_todos_added_total",
			Help: "Total number of todos added",
		}),
		TodosCompleted: f.NewCounter(prometheus.CounterOpts{
			Name: "todolists_todos_completed_total",
			Help: "Total number of todo completions, including complete-all",
		}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "todolists_validation_failures_total",
			Help: "Rejected list or todo names by operation",
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementListsCreated() {
	if m != nil {
		m.ListsCreated.Inc()
	}
}

func (m *Metrics) IncrementListsDeleted() {
	if m != nil {
		m.ListsDeleted.Inc()
	}
}

func (m *Metrics) IncrementTodosAdded() {
	if m != nil {
		m.TodosAdded.Inc()
	}
}

// AddTodosCompleted counts n todos transitioning to complete.
func (m *Metrics) AddTodosCompleted(n int) {
	if m != nil && n > 0 {
		m.TodosCompleted.Add(float64(n))
	}
}

func (m *Metrics) IncrementValidationFailure(operation string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(operation).Inc()
	}
}
