package queries_test

import (
	"testing"

	"exportflow/internal/core/application/usecases/queries"
	"exportflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_Valid(t *testing.T) {
	awb, err := kernel.AWBFromString("DH2026090100042")
	require.NoError(t, err)

	query, err := queries.NewGetShipmentQuery(awb)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, awb, query.AWB())
}

func TestNewGetShipmentQuery_EmptyAWB(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(kernel.AWB{})
	require.Error(t, err)
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
