// Package pactest provides test assertions for numbering contract implementations.
package pactest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tiwalun/riscv/rvgo/pac"
)

func RequireExceptions[E pac.ComparableException[E]](t testing.TB, variants ...E) {
	t.Helper()
	require.NoError(t, pac.ValidateExceptions(variants...), "exception numbering contract")
}

func RequireInterrupts[I pac.ComparableInterrupt[I]](t testing.TB, variants ...I) {
	t.Helper()
	require.NoError(t, pac.ValidateInterrupts(variants...), "interrupt numbering contract")
}

func RequirePriorities[P pac.ComparablePriority[P]](t testing.TB, variants ...P) {
	t.Helper()
	require.NoError(t, pac.ValidatePriorities(variants...), "priority numbering contract")
}

func RequireHartIds[H pac.ComparableHartId[H]](t testing.TB, variants ...H) {
	t.Helper()
	require.NoError(t, pac.ValidateHartIds(variants...), "hart id numbering contract")
}
