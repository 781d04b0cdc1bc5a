package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/show/internal/record"
)

func runWith(t *testing.T, args []string, input string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_RendersObject(t *testing.T) {
	code, out, _ := runWith(t, nil, `{"a":1,"b":null}`)
	assert.Equal(t, 0, code)
	plain := record.Strip(out)
	assert.Contains(t, plain, "a")
	assert.Contains(t, plain, "1")
	assert.NotContains(t, plain, "b")
}

func TestRun_EnvelopeWithUnknownTitle(t *testing.T) {
	code, out, _ := runWith(t, nil, `{"title":"Whatever","values":[1,2,3]}`)
	assert.Equal(t, 0, code)
	assert.Contains(t, record.Strip(out), "1 2 3")
}

func TestRun_EmptyInput(t *testing.T) {
	code, out, errOut := runWith(t, nil, "  \n ")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no data")
}

func TestRun_BrokenJSON(t *testing.T) {
	code, out, errOut := runWith(t, nil, `{"a":`)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "broken JSON")
}

func TestRun_ParsePrintsIndentedJSON(t *testing.T) {
	code, out, _ := runWith(t, []string{"-parse"}, `{"b":2,"a":1}`)
	require.Equal(t, 0, code)
	// key order preserved, not sorted
	assert.Less(t, strings.Index(out, `"b"`), strings.Index(out, `"a"`))
	assert.Contains(t, out, "  ")
}

func TestRun_ParseYAML(t *testing.T) {
	code, out, _ := runWith(t, []string{"-parse"}, "name: x\ncount: 3\n")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"name": "x"`)
	assert.Contains(t, out, `"count": 3`)
}

func TestRun_WidthOverride(t *testing.T) {
	code, _, _ := runWith(t, []string{"-width", "40"}, `{"a":1}`)
	assert.Equal(t, 0, code)
}

func TestRun_RecordWritesSnapshot(t *testing.T) {
	t.Chdir(t.TempDir())
	code, _, _ := runWith(t, []string{"-record"}, `{"a":1}`)
	require.Equal(t, 0, code)
	data, err := os.ReadFile(record.DefaultPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRun_BadFlag(t *testing.T) {
	code, _, errOut := runWith(t, []string{"-nope"}, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "flag provided but not defined")
}
