package source

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// skipped elements never contribute visible text.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// Extract returns the visible text of an HTML document and the raw href of
// every <a> element. Text nodes are concatenated in document order. Malformed
// markup is tolerated; whatever the parser recovers is returned.
func Extract(body []byte) (string, []string) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", nil
	}

	var text strings.Builder
	var hrefs []string

	// track a "skip depth" to ignore text under script, style and noscript
	var skipDepth int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		skip := n.Type == html.ElementNode && skipped[strings.ToLower(n.Data)]
		if skip {
			skipDepth++
		}

		if skipDepth == 0 {
			if n.Type == html.TextNode {
				text.WriteString(n.Data)
			}
			if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
				for _, a := range n.Attr {
					if strings.EqualFold(a.Key, "href") {
						val := strings.TrimSpace(a.Val)
						if val != "" {
							hrefs = append(hrefs, val)
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if skip {
			skipDepth--
		}
	}
	walk(root)
	return text.String(), hrefs
}
