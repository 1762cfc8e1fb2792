package queries_test

import (
	"testing"
	"time"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func periodPage(t *testing.T) kernel.PageRequest {
	t.Helper()
	page, err := kernel.NewPageRequest(0, 10, "scheduled_at", true, queries.DeliverySortFields)
	require.NoError(t, err)
	return page
}

func TestNewGetDeliveriesByPeriodQuery_Valid(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)

	query, err := queries.NewGetDeliveriesByPeriodQuery(from, to, periodPage(t))

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, from, query.From())
	assert.Equal(t, to, query.To())
}

func TestNewGetDeliveriesByPeriodQuery_ToBeforeFrom(t *testing.T) {
	from := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetDeliveriesByPeriodQuery(from, to, periodPage(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetDeliveriesByPeriodQuery_MissingBounds(t *testing.T) {
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetDeliveriesByPeriodQuery(time.Time{}, to, periodPage(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetDeliveriesByPeriodQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveriesByPeriodQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveriesByPeriodQueryIsNotConstructed)
}
