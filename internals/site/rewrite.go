package site

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// versioned lists the elements and attributes whose local asset URLs get ?v=.
var versioned = map[string]string{
	"script": "src",
	"link":   "href",
	"img":    "src",
	"source": "src",
}

// RewriteAssetURLs appends v=<version> to local asset references in an HTML document.
// Everything except rewritten tags is copied byte for byte.
func RewriteAssetURLs(doc []byte, version string) ([]byte, error) {
	if version == "" {
		return doc, nil
	}
	z := html.NewTokenizer(bytes.NewReader(doc))
	var out bytes.Buffer
	out.Grow(len(doc) + 256)

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return out.Bytes(), nil

		case html.StartTagToken, html.SelfClosingTagToken:
			raw := append([]byte(nil), z.Raw()...)
			tok := z.Token()
			if rewriteToken(&tok, version) {
				out.WriteString(tok.String())
			} else {
				out.Write(raw)
			}

		default:
			out.Write(z.Raw())
		}
	}
}

func rewriteToken(tok *html.Token, version string) bool {
	attrName, ok := versioned[tok.Data]
	if !ok {
		return false
	}
	changed := false
	for i, a := range tok.Attr {
		// <source srcset> is left alone; only single URLs are versioned.
		if a.Namespace != "" || a.Key != attrName {
			continue
		}
		if v, ok := VersionURL(a.Val, version); ok {
			tok.Attr[i].Val = v
			changed = true
		}
	}
	return changed
}

// VersionURL adds v=<version> to a local assets URL. ok is false when u is
// remote, outside assets, or already versioned.
func VersionURL(u, version string) (string, bool) {
	if !isLocalAsset(u) {
		return u, false
	}

	base, fragment, _ := strings.Cut(u, "#")
	path, query, hasQuery := strings.Cut(base, "?")
	if hasQuery {
		if q, err := url.ParseQuery(query); err == nil && q.Has("v") {
			return u, false
		}
	}

	var b strings.Builder
	b.WriteString(path)
	if hasQuery && query != "" {
		b.WriteString("?")
		b.WriteString(query)
		b.WriteString("&v=")
	} else {
		b.WriteString("?v=")
	}
	b.WriteString(url.QueryEscape(version))
	if fragment != "" {
		b.WriteString("#")
		b.WriteString(fragment)
	}
	return b.String(), true
}

func isLocalAsset(u string) bool {
	u = strings.TrimSpace(u)
	if u == "" || strings.Contains(u, "://") || strings.HasPrefix(u, "//") || strings.HasPrefix(u, "data:") {
		return false
	}
	for strings.HasPrefix(u, "./") || strings.HasPrefix(u, "../") {
		u = strings.TrimPrefix(strings.TrimPrefix(u, "./"), "../")
	}
	return strings.HasPrefix(u, "/assets/") || strings.HasPrefix(u, "assets/")
}
