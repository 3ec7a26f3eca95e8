package iojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string][]string{"colors": {"red"}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"colors":["red"]}`, out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalError(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	var e Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &e))
	assert.Equal(t, "cannot encode output", e.Message)
	assert.Equal(t, "map[string]interface {}", e.Data["type"])
	assert.Contains(t, e.Data["json_error"], "chan int")
}

func TestMarshalError(t *testing.T) {
	s := MarshalError("page invalid", map[string]any{"field": "controls[0].id"})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(s), &e))
	assert.Equal(t, "page invalid", e.Message)
	assert.Equal(t, "controls[0].id", e.Data["field"])
}

func TestMarshalError_UnencodableData(t *testing.T) {
	s := MarshalError("page invalid", map[string]any{"bad": func() {}})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(s), &e))
	assert.Equal(t, "page invalid", e.Message)
	assert.Contains(t, e.Data, "json_error")
}

func TestFileReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("controls: []"), 0o644))

	var fr FileReader
	fr.SetPath(path)

	assert.True(t, fr.Provided())
	assert.Equal(t, path, fr.Path())

	data, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, "controls: []", string(data))
}

func TestFileReader_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString("containers: []")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	fr := FileReader{stdin: r}
	fr.SetPath("")

	assert.True(t, fr.Provided())
	assert.Equal(t, "-", fr.Path())

	data, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, "containers: []", string(data))
}

func TestFileReader_Missing(t *testing.T) {
	var fr FileReader
	fr.SetPath(filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := fr.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
