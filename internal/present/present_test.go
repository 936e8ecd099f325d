package present

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xhy51/wordfreq/internal/freq"
)

var sample = []freq.Entry{
	{Token: "cats", Count: 3},
	{Token: "dogs", Count: 2},
	{Token: "birds", Count: 1},
}

func TestLines_Present(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, (&Lines{W: buf}).Present(sample))
	assert.Equal(t, "cats:3\ndogs:2\nbirds:1\n", buf.String())
}

func TestLines_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, (&Lines{W: buf}).Present(nil))
	assert.Empty(t, buf.String())
}

func TestJSON_Present(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, (&JSON{W: buf}).Present(sample))

	var got []freq.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), `"token": "cats"`)
}

func TestJSON_EmptyIsArray(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, (&JSON{W: buf}).Present(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestChart_Present(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, (&Chart{W: buf, Width: 9}).Present(sample))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Top 3 tokens")
	assert.Equal(t, " cats █████████ 3", lines[1])
	assert.Equal(t, " dogs ██████ 2", lines[2])
	assert.Equal(t, "birds ███ 1", lines[3])
}

func TestChart_LimitsToTop(t *testing.T) {
	var entries []freq.Entry
	for i := 0; i < 60; i++ {
		entries = append(entries, freq.Entry{Token: strings.Repeat("w", i%5+2), Count: 60 - i})
	}
	buf := new(bytes.Buffer)
	require.NoError(t, (&Chart{W: buf}).Present(entries))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, DefaultChartTop+1)
}

func TestChart_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, (&Chart{W: buf}).Present(nil))
	assert.Contains(t, buf.String(), "No tokens to chart.")
}
