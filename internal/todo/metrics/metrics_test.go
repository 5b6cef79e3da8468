package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementListsCreated()
	m.IncrementTodosAdded()
	m.IncrementTodosAdded()
	m.AddTodosCompleted(3)
	m.AddTodosCompleted(0)
	m.IncrementValidationFailure("add_todo")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TodosAdded))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.TodosCompleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("add_todo")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementListsCreated()
		m.IncrementListsDeleted()
		m.IncrementTodosAdded()
		m.AddTodosCompleted(1)
		m.IncrementValidationFailure("create_list")
	})
}
