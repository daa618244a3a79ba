package app_test

import (
	"courseware_backend/docs"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestEveryAPIRouteIsDocumented(t *testing.T) {
	s := newTestServer(t)

	var spec struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &spec))
	require.Equal(t, "/api", spec.BasePath)

	documented := 0
	for _, r := range s.app.Router.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		path := pathParam.ReplaceAllString(strings.TrimPrefix(r.Path, "/api"), "{$1}")
		ops, ok := spec.Paths[path]
		if assert.True(t, ok, "missing path %s", path) {
			_, ok = ops[strings.ToLower(r.Method)]
			assert.True(t, ok, "missing %s %s", r.Method, path)
		}
		documented++
	}
	assert.Equal(t, 16, documented)
}
