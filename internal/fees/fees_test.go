package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "fundcore/pkg/domain-errors"
	"fundcore/pkg/testutil"
)

func TestValidateFees(t *testing.T) {
	t.Run("accepts fees at and below the caps", func(t *testing.T) {
		pairs := [][2]uint32{
			{0, 0},
			{MaxManagementFeeBps, MaxPerformanceFeeBps},
			{200, 2000},
			{0, MaxPerformanceFeeBps},
			{MaxManagementFeeBps, 0},
		}
		for _, p := range pairs {
			assert.NoError(t, ValidateFees(p[0], p[1]), "management=%d performance=%d", p[0], p[1])
		}
	})

	t.Run("rejects management fee above cap", func(t *testing.T) {
		err := ValidateFees(MaxManagementFeeBps+1, 0)
		require.ErrorIs(t, err, ErrManagementFeeTooHigh)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects performance fee above cap", func(t *testing.T) {
		err := ValidateFees(0, MaxPerformanceFeeBps+1)
		require.ErrorIs(t, err, ErrPerformanceFeeTooHigh)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	testutil.Given(t, "both bounds are violated", func(t *testing.T) {
		testutil.When(t, "the policy is validated", func(t *testing.T) {
			err := ValidateFees(MaxManagementFeeBps+1, MaxPerformanceFeeBps+1)
			testutil.Then(t, "the management fee error wins", func(t *testing.T) {
				require.ErrorIs(t, err, ErrManagementFeeTooHigh)
			})
		})
	})
}
