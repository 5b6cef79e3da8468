package testutil

import "testing"

// Step is one named stage of a scenario.
type Step struct {
	Desc string
	Fn   func(t *testing.T)
}

// Given, When, and Then label steps so scenarios read like their
// descriptions without pulling in a heavy BDD framework.
func Given(desc string, fn func(t *testing.T)) Step { return Step{Desc: "Given " + desc, Fn: fn} }

func When(desc string, fn func(t *testing.T)) Step { return Step{Desc: "When " + desc, Fn: fn} }

func Then(desc string, fn func(t *testing.T)) Step { return Step{Desc: "Then " + desc, Fn: fn} }

// Scenario runs steps in order as subtests and stops at the first failing
// step, since later steps depend on earlier state.
func Scenario(t *testing.T, steps ...Step) {
	t.Helper()
	for _, s := range steps {
		if !t.Run(s.Desc, s.Fn) {
			return
		}
	}
}
