package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_Flags(t *testing.T) {
	cmd := Create()

	require.NotNil(t, cmd)
	assert.Equal(t, "create", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("cluster-id"))
	assert.NotNil(t, cmd.Flags().Lookup("level"))
}

func TestRead_Flags(t *testing.T) {
	cmd := Read()

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("uid"))
	assert.NotNil(t, cmd.Flags().Lookup("cluster-id"))
}

func TestUpdate_Flags(t *testing.T) {
	cmd := Update()

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("uid"))
	assert.NotNil(t, cmd.Flags().Lookup("level"))
}

func TestDelete_Flags(t *testing.T) {
	cmd := Delete()

	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("uid"))
}

func TestList_Flags(t *testing.T) {
	cmd := List()

	require.NotNil(t, cmd)
	refs := cmd.Flags().Lookup("refs")
	require.NotNil(t, refs)
	assert.Equal(t, "bindings.yaml", refs.DefValue)
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()

	require.NotNil(t, cmd)
	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "emr-stepcon.yaml", output.DefValue)
}

func TestVersion(t *testing.T) {
	cmd := Version()

	require.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Print version information", cmd.Short)
}
