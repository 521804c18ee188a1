package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptions() (*globalOptions, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &globalOptions{
		Encoding: "utf-8",
		logger:   log.NewNopLogger(),
		out:      out,
	}, out
}

func TestAppendCmd(t *testing.T) {
	g, out := newTestOptions()
	cmd := &appendCmd{Path: "/search", Params: []string{"q=a&b", "page=2"}}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "/search?q=a%26b&page=2\n", out.String())

	cmd = &appendCmd{Path: "/search", Params: []string{"novalue"}}
	assert.Error(t, cmd.Run(g))
}

func TestParseCmd(t *testing.T) {
	g, out := newTestOptions()
	cmd := &parseCmd{Source: "/contacts?foo=bar&color=red&foo=baz&bad=%zz"}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "foo=baz\ncolor=red\n", out.String())

	out.Reset()
	cmd.All = true
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "color=red\nfoo=bar\nfoo=baz\n", out.String())

	g.StrictQuery = true
	assert.Error(t, cmd.Run(g))
}

func TestInterpolateCmd(t *testing.T) {
	g, out := newTestOptions()
	cmd := &interpolateCmd{Template: "articles/(articleID)", Properties: []string{"articleID=12345"}}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "articles/12345\n", out.String())

	g.StrictInterpolation = true
	cmd = &interpolateCmd{Template: "(a)-(b)", Properties: []string{"a=1"}}
	assert.Error(t, cmd.Run(g))
}

func TestMatchCmd(t *testing.T) {
	g, out := newTestOptions()
	cmd := &matchCmd{Template: "/users/(user)/repos/(repo)", Path: "/users/blake/repos/restkit"}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "user=blake\nrepo=restkit\n", out.String())

	cmd.Path = "/users/blake"
	assert.Error(t, cmd.Run(g))
}

func TestRouteCmd(t *testing.T) {
	g, out := newTestOptions()
	cmd := &routeCmd{Path: "/articles/7"}
	assert.Error(t, cmd.Run(g))

	g.Config = filepath.Join(t.TempDir(), "pathkit.yaml")
	require.NoError(t, os.WriteFile(g.Config, []byte(`
routes:
  - type: main.Article
    method: GET
    path: /articles/(articleID)
`), 0o644))

	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "GET main.Article /articles/(articleID)\narticleID=7\n", out.String())

	cmd.Path = "/nothing"
	assert.Error(t, cmd.Run(g))
}
