package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeFixture struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	err := PrintJSON(&buf, encodeFixture{Name: "warmup", Count: 3})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"name\": \"warmup\",\n  \"count\": 3\n}\n", buf.String())
}

func TestPrintJSONMap(t *testing.T) {
	var buf bytes.Buffer
	err := PrintJSON(&buf, map[string]string{"target_host": "10.0.0.5"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"target_host": "10.0.0.5"`)
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	err := PrintYAML(&buf, encodeFixture{Name: "warmup", Count: 3})
	require.NoError(t, err)

	assert.Equal(t, "name: warmup\ncount: 3\n", buf.String())
}

func TestPrintYAMLList(t *testing.T) {
	var buf bytes.Buffer
	err := PrintYAML(&buf, []string{"pause", "resume"})
	require.NoError(t, err)

	assert.Equal(t, "- pause\n- resume\n", buf.String())
}
