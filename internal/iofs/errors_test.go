package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateDirError_Structure verifies error structure.
func TestCreateDirError_Structure(t *testing.T) {
	testDir := "/test/dir"
	originalErr := errors.New("permission denied")

	err := CreateDirError(testDir, originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, testDir, gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestReadFileError_WrapsCause(t *testing.T) {
	cause := errors.New("no such file")
	err := ReadFileError("/tmp/config.yaml", cause)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, cause)
}
