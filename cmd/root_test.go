package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNoFlagsRendersAllCategoriesInOrder(t *testing.T) {
	out, _, err := executeRoot(t)
	require.NoError(t, err)

	headers := []string{
		"=== MOVEMENT Shortcuts ===",
		"=== EDIT Shortcuts ===",
		"=== RECALL Shortcuts ===",
		"=== PROCESS Shortcuts ===",
	}

	assert.Equal(t, 4, strings.Count(out, "Shortcuts ==="))

	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		require.NotEqual(t, -1, idx, "missing header %q", h)
		assert.Greater(t, idx, last, "header %q out of order", h)
		last = idx
	}
}

func TestSingleCategoryFlag(t *testing.T) {
	out, _, err := executeRoot(t, "-m")
	require.NoError(t, err)

	assert.Contains(t, out, "=== MOVEMENT Shortcuts ===")
	assert.Contains(t, out, "Ctrl+a")
	assert.Contains(t, out, "Ctrl+xx")
	assert.Equal(t, 1, strings.Count(out, "Shortcuts ==="))
}

func TestChainedFlagsMatchSeparateFlags(t *testing.T) {
	testCases := []struct {
		name     string
		chained  []string
		separate []string
	}{
		{name: "movement and edit", chained: []string{"-me"}, separate: []string{"-m", "-e"}},
		{name: "edit and recall", chained: []string{"-er"}, separate: []string{"-e", "-r"}},
		{name: "all four", chained: []string{"-merp"}, separate: []string{"-m", "-e", "-r", "-p"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chainedOut, _, err := executeRoot(t, tc.chained...)
			require.NoError(t, err)
			separateOut, _, err := executeRoot(t, tc.separate...)
			require.NoError(t, err)

			assert.Equal(t, separateOut, chainedOut)
		})
	}
}

func TestCanonicalOrderIgnoresFlagOrder(t *testing.T) {
	out, _, err := executeRoot(t, "-pm")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Shortcuts ==="))

	movement := strings.Index(out, "=== MOVEMENT Shortcuts ===")
	process := strings.Index(out, "=== PROCESS Shortcuts ===")
	require.NotEqual(t, -1, movement)
	require.NotEqual(t, -1, process)
	assert.Less(t, movement, process)

	reversed, _, err := executeRoot(t, "-mp")
	require.NoError(t, err)
	assert.Equal(t, out, reversed)
}

func TestDuplicateFlagsCollapse(t *testing.T) {
	once, _, err := executeRoot(t, "-m")
	require.NoError(t, err)
	twice, _, err := executeRoot(t, "-m", "-m")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestUnknownFlagFailsWithoutOutput(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown short flag", args: []string{"-z"}},
		{name: "unknown letter in chain", args: []string{"-mz"}},
		{name: "unknown long flag", args: []string{"--bogus"}},
		{name: "positional argument", args: []string{"movement"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := executeRoot(t, tc.args...)
			require.Error(t, err)
			assert.NotContains(t, out, "Shortcuts ===")
		})
	}
}

func TestVersionFlagSkipsTables(t *testing.T) {
	for _, args := range [][]string{{"-v"}, {"--version"}} {
		out, _, err := executeRoot(t, args...)
		require.NoError(t, err)

		assert.Contains(t, out, version)
		assert.NotContains(t, out, "Shortcuts ===")
	}
}

func TestHelpFlagSkipsTables(t *testing.T) {
	out, _, err := executeRoot(t, "-h")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	assert.NotContains(t, out, "Shortcuts ===")
}

func TestSelectedCategories(t *testing.T) {
	testCases := []struct {
		name  string
		flags rootFlags
		want  []Category
	}{
		{
			name:  "none requested defaults to all",
			flags: rootFlags{},
			want:  []Category{CategoryMovement, CategoryEdit, CategoryRecall, CategoryProcess},
		},
		{
			name:  "single category",
			flags: rootFlags{recall: true},
			want:  []Category{CategoryRecall},
		},
		{
			name:  "subset keeps canonical order",
			flags: rootFlags{process: true, movement: true},
			want:  []Category{CategoryMovement, CategoryProcess},
		},
		{
			name:  "all requested",
			flags: rootFlags{movement: true, edit: true, recall: true, process: true},
			want:  []Category{CategoryMovement, CategoryEdit, CategoryRecall, CategoryProcess},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selectedCategories(&tc.flags))
		})
	}
}
