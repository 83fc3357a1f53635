package testutil

import "testing"

// Given, When, and Then wrap subtests with behavioural prefixes so scenario
// tests read as sentences in verbose output. They nest: a Given holds the
// fixture, a When performs the operation, a Then asserts one outcome.
func Given(t *testing.T, scenario string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+scenario, fn)
}

func When(t *testing.T, action string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+action, fn)
}

func Then(t *testing.T, outcome string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+outcome, fn)
}
