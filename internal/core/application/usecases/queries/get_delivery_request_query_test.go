package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryRequestQuery(t *testing.T) {
	t.Run("valid_query", func(t *testing.T) {
		query, err := queries.NewGetDeliveryRequestQuery("d210")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "d210", query.DeliveryID())
	})

	t.Run("empty_delivery_id", func(t *testing.T) {
		_, err := queries.NewGetDeliveryRequestQuery("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetDeliveryRequestQuery_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var query queries.GetDeliveryRequestQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetDeliveryRequestQueryIsNotConstructed, err)
	})
}
