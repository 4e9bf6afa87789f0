package command

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSketchify(t *testing.T, handler http.HandlerFunc) *SketchifyCommand {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cmd := NewSketchify(srv.Client())
	cmd.BaseURL = srv.URL
	return cmd
}

func TestSketchifySendsLongURL(t *testing.T) {
	var gotLongURL string
	cmd := newTestSketchify(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotLongURL = r.PostForm.Get("long_url")
		w.Write([]byte("verylegit.link/not-at-all.sketchy"))
	})

	resp, err := cmd.Run(context.Background(), "https://git.sr.ht")
	require.NoError(t, err)
	assert.Equal(t, "https://git.sr.ht", gotLongURL)

	// The service answers without a scheme; one is prepended.
	require.Equal(t, Link{URL: "http://verylegit.link/not-at-all.sketchy"}, resp)
}

func TestSketchifyKeepsReturnedScheme(t *testing.T) {
	cmd := newTestSketchify(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("https://verylegit.link/totally.fine"))
	})

	resp, err := cmd.Run(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.Equal(t, Link{URL: "https://verylegit.link/totally.fine"}, resp)
}

func TestSketchifyValidation(t *testing.T) {
	cmd := NewSketchify(nil)

	for _, input := range []string{"", "not a url", "%393j+}[4", "relative/path", "https://a.com https://b.com"} {
		_, err := cmd.Run(context.Background(), input)
		require.Error(t, err, "input %q", input)

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, ErrValidation, cmdErr.Kind, "input %q", input)
	}
}

func TestSketchifyServiceFailure(t *testing.T) {
	cmd := newTestSketchify(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := cmd.Run(context.Background(), "https://example.com")
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, ErrRequest, cmdErr.Kind)
}
