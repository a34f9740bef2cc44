package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jgriffin/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	missing := filepath.Join(t.TempDir(), "config.yaml")
	cmd.SetArgs(append([]string{"--config", missing}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootSamples(t *testing.T) {
	out, err := runRoot(t, "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "167409079868000")
	assert.Contains(t, out, "952408144115")
}

func TestRootSingleDay(t *testing.T) {
	out, err := runRoot(t, "--sample", "--day", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "35")
	assert.Contains(t, out, "46")
}

func TestRootSinglePart(t *testing.T) {
	out, err := runRoot(t, "--sample", "-d", "17", "-p", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "94")
}

func TestRootUnknownDay(t *testing.T) {
	_, err := runRoot(t, "--sample", "--day", "3")
	require.ErrorIs(t, err, aoc.ErrNoDay)
}

func TestRootExclusiveFlags(t *testing.T) {
	_, err := runRoot(t, "--sample", "--skip-sample")
	require.Error(t, err)
}

func TestRootBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeFile(path, "year: [\n"))
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "--sample"})
	require.Error(t, cmd.Execute())
}

func TestList(t *testing.T) {
	out, err := runRoot(t, "list")
	require.NoError(t, err)
	for _, d := range []string{"5", "10", "14", "16", "17", "18", "19", "20", "21"} {
		assert.Contains(t, out, d)
	}
}

func TestSolverSamples(t *testing.T) {
	infos, err := aoc.Days(source, &solver{})
	require.NoError(t, err)
	require.Len(t, infos, 9)
	for _, d := range infos {
		assert.Equal(t, []string{"1", "2"}, d.Parts, "day %d", d.Day)
		want := 2
		if d.Day == 20 || d.Day == 21 {
			want = 1
		}
		assert.Equal(t, want, d.Samples, "day %d", d.Day)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
