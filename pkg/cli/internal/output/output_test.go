package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	err := JSON(&buf, map[string]any{"ulid": "01ARZ3NDEKTSV4RRFFQ69G5FAV", "millis": 1469922850259})
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"millis\": 1469922850259,\n  \"ulid\": \"01ARZ3NDEKTSV4RRFFQ69G5FAV\"\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	w := Table(&buf)
	fmt.Fprintln(w, "KEY\tVALUE")
	fmt.Fprintln(w, "count\t10")
	assert.NoError(t, w.Flush())
	assert.Equal(t, "KEY    VALUE\ncount  10\n", buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "%s implies %s", "--strict", "--monotonic")
	assert.Equal(t, "Warning: --strict implies --monotonic\n", buf.String())
}
