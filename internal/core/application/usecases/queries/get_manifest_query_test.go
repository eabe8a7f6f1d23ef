package queries_test

import (
	"testing"

	"exportflow/internal/core/application/usecases/queries"
	"exportflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetManifestQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetManifestQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.ManifestID())
}

func TestNewGetManifestQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetManifestQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetManifestQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetManifestQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetManifestQueryIsNotConstructed)
}
