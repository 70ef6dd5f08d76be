package dcfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/datacenter/internal/core"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"element_records": "AQAAAAAAAAAAAAAAAAAAAA==",
		"element_segment_counts": [1],
		"names": ["root"],
		"values": {"1:2": "hello"},
		"root_segment": 0,
		"root_index": 0
	}`), 0o600))

	input, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"root"}, input.Names)
	require.Equal(t, "hello", input.Values[core.Address{Segment: 1, Index: 2}])
	require.Equal(t, []int{1}, input.ElementSegmentCounts)
}

func TestLoad_MalformedValueKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"values": {"nope": "x"}}`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path.json")
	require.Error(t, err)
}
