package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	page := `
	<!doctype html>
	<html>
	  <head>
	    <style>body{color:red}</style>
	    <script>var x=1</script>
	  </head>
	  <body>
	    <!-- hidden comment -->
	    <p>Hello, world! 42</p>
	    <noscript>enable javascript</noscript>
	    <a href="a.html">A</a>
	    <a href="/abs/b.html#frag">B</a>
	  </body>
	</html>`

	text, hrefs := Extract([]byte(page))
	fields := strings.Fields(text)

	assert.Subset(t, fields, []string{"Hello,", "world!", "42", "A", "B"})
	for _, bad := range []string{"var", "x=1", "body{color:red}", "comment", "javascript"} {
		assert.NotContains(t, fields, bad)
	}
	assert.Equal(t, []string{"a.html", "/abs/b.html#frag"}, hrefs)
}

func TestExtract_Malformed(t *testing.T) {
	text, _ := Extract([]byte(`<p>unclosed <b>bold <i>text`))
	assert.Equal(t, []string{"unclosed", "bold", "text"}, strings.Fields(text))
}

func TestCleanHref(t *testing.T) {
	base := "http://example.com/base/"
	tests := []struct {
		href string
		want string
	}{
		{"a/b", "http://example.com/base/a/b"},
		{"/x", "http://example.com/x"},
		{"#frag", ""},
		{"javascript:alert(1)", ""},
		{"data:text/plain;base64,AAAA", ""},
		{"mailto:someone@example.com", ""},
		{"c.html#sec", "http://example.com/base/c.html"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CleanHref(base, tc.href), "CleanHref(%q, %q)", base, tc.href)
	}
}

func TestDownload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "hello")
	})
	mux.HandleFunc("/created", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "made")
	})
	mux.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()

	b, err := Download(ctx, nil, srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	b, err = Download(ctx, srv.Client(), srv.URL+"/created")
	require.NoError(t, err)
	assert.Equal(t, "made", string(b))

	_, err = Download(ctx, nil, srv.URL+"/fail")
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "500")
}

func TestDownload_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := Download(context.Background(), nil, addr)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestWeb_Text(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><h1>Pattern recognition</h1>
<p>pattern matching</p></body></html>`)
	}))
	defer srv.Close()

	web := &Web{URL: srv.URL}
	text, err := web.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pattern", "recognition", "pattern", "matching"}, strings.Fields(text))
	assert.Equal(t, srv.URL, web.String())
}

func TestLiteral_Text(t *testing.T) {
	text, err := Literal("cats dogs").Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cats dogs", text)
}

func TestFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("one two"), 0o600))

	text, err := File(path).Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one two", text)

	_, err = File(filepath.Join(t.TempDir(), "missing.txt")).Text(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSite_Crawl(t *testing.T) {
	// root links to /d1, /d2, /d3 and an off-host page that must be ignored
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, `
			<html><body>root
			  <a href="/d1">d1</a>
			  <a href="/d2">d2</a>
			  <a href="/missing">gone</a>
			  <a href="http://example.com/evil">off</a>
			</body></html>`)
	})
	mux.HandleFunc("/d1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><a href="/d2">to d2</a> alpha</body></html>`)
	})
	mux.HandleFunc("/d2", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body>beta</body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var visited []string
	site := &Site{
		URL:      srv.URL + "/",
		MaxPages: 10,
		Rate:     1000,
		OnPage:   func(u string, _ error) { visited = append(visited, u) },
	}
	pages, err := site.Crawl(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{srv.URL + "/", srv.URL + "/d1", srv.URL + "/d2", srv.URL + "/missing"}, visited)
	require.Len(t, pages, 3)
	assert.Contains(t, pages[1], "alpha")
	assert.Contains(t, pages[2], "beta")
	for _, u := range visited {
		assert.NotContains(t, u, "example.com")
	}
}

func TestSite_MaxPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<a href="/next`+r.URL.Path+`">more</a>`)
	}))
	defer srv.Close()

	pages, err := (&Site{URL: srv.URL + "/", MaxPages: 3, Rate: 1000}).Crawl(context.Background())
	require.NoError(t, err)
	assert.Len(t, pages, 3)
}

func TestSite_StartPageFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := (&Site{URL: srv.URL + "/", MaxPages: 3, Rate: 1000}).Text(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
}
