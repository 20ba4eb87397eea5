package doctor_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/hbjs97/zpick/internal/doctor"
	"github.com/hbjs97/zpick/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckZoxide_Present(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("zoxide --version", "zoxide 0.9.6\n", nil)

	result := doctor.CheckZoxide(context.Background(), fake, "")
	assert.Equal(t, doctor.StatusOK, result.Status)
	assert.Equal(t, "zoxide 0.9.6", result.Message)
}

func TestCheckZoxide_Missing(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("zoxide --version", "", fmt.Errorf("not found"))

	result := doctor.CheckZoxide(context.Background(), fake, "")
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.NotEmpty(t, result.Fix)
}

func TestCheckConfig_MissingFileIsOK(t *testing.T) {
	result := doctor.CheckConfig(filepath.Join(t.TempDir(), "config.toml"))
	assert.Equal(t, doctor.StatusOK, result.Status)
}

func TestCheckConfig_ParseFailure(t *testing.T) {
	path := testutil.WriteConfig(t, t.TempDir(), `max_results = `)

	result := doctor.CheckConfig(path)
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.Contains(t, result.Fix, path)
}

func TestCheckTemplate_Malformed(t *testing.T) {
	path := testutil.WriteConfig(t, t.TempDir(), `command_on_select = "open {"`)

	result := doctor.CheckTemplate(path)
	assert.Equal(t, doctor.StatusFail, result.Status)
}

func TestCheckTemplate_WellFormed(t *testing.T) {
	path := testutil.WriteConfig(t, t.TempDir(), `command_on_select = "code {}"`)

	result := doctor.CheckTemplate(path)
	assert.Equal(t, doctor.StatusOK, result.Status)
}

func TestRunAll_UsesConfiguredBinary(t *testing.T) {
	path := testutil.WriteConfig(t, t.TempDir(), `zoxide_bin = "/opt/bin/zoxide"`)

	fake := testutil.NewFakeCommander()
	fake.Register("/opt/bin/zoxide --version", "zoxide 0.9.6", nil)

	results := doctor.RunAll(context.Background(), fake, path)
	require.NotEmpty(t, results)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
	assert.True(t, fake.Called("/opt/bin/zoxide --version"))
}
