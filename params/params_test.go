package params

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempParams(t *testing.T) {
	t.Helper()
	orig := ParamsPath
	ParamsPath = filepath.Join(t.TempDir(), "d")
	t.Cleanup(func() { ParamsPath = orig })
	EnsureParamDirectories()
}

func TestStoreRoundTrip(t *testing.T) {
	useTempParams(t)
	store := Store{}

	require.NoError(t, store.Put("SccdCruiseState", []byte("1")))

	data, err := store.Get("SccdCruiseState")
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))

	_, err = store.Get("DoesNotExist")
	assert.Error(t, err)
}

func TestPutParamOverwrites(t *testing.T) {
	useTempParams(t)
	path := ParamPath("SccdCruiseState")

	require.NoError(t, PutParam(path, []byte("0")))
	require.NoError(t, PutParam(path, []byte("1")))

	data, err := GetParam(path)
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}

func TestEnsureParamsExist(t *testing.T) {
	useTempParams(t)

	cruiseState := ParamPath("SccdCruiseState")
	exists, err := Exists(cruiseState)
	require.NoError(t, err)
	require.False(t, exists)

	EnsureParamsExist()

	data, err := GetParam(cruiseState)
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))

	// an existing value is left alone
	require.NoError(t, PutParam(cruiseState, []byte("1")))
	EnsureParamsExist()
	data, err = GetParam(cruiseState)
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}
