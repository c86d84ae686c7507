package inliner

import (
	"encoding/base64"
	"errors"
	"testing"
)

func svgURI(doc string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(doc))
}

func TestSubstituteSVGDataURIs(t *testing.T) {
	tests := []struct {
		doc, expecting string
	}{
		{
			"<svg><rect width=\"1\" height=\"2\"/></svg>",
			"\" + createSVG(SVG(\"svg\", {}, SVG(\"rect\", {\"width\":\"1\",\"height\":\"2\"}))) + \"",
		},
		{
			"<svg xmlns=\"http://www.w3.org/2000/svg\"><circle r=\"1\"/></svg>",
			"\" + createSVG(SVG(\"svg\", {}, SVG(\"circle\", {\"r\":\"1\"}))) + \"",
		},
		{
			"<svg width=\"3\" height=\"4\"><a/><b/><c/></svg>",
			"\" + createSVG(SVG(\"svg\", {\"width\":\"3\",\"height\":\"4\"}, SVG(\"a\", {}), SVG(\"b\", {}), SVG(\"c\", {}))) + \"",
		},
		{
			"<svg xmlns:xlink=\"http://www.w3.org/1999/xlink\"><use xlink:href=\"#a\"/></svg>",
			"\" + createSVG(SVG(\"svg\", {}, SVG(\"use\", {\"{http://www.w3.org/1999/xlink}href\":\"#a\"}))) + \"",
		},
	}

	for n, tt := range tests {
		js := "\"a{b:url(" + svgURI(tt.doc) + ")}\""

		out, err := substituteSVGDataURIs(js)
		if err != nil {
			t.Errorf("test %d: unexpected error: %s", n+1, err)

			continue
		}

		if expecting := "\"a{b:" + tt.expecting + "}\""; out != expecting {
			t.Errorf("test %d: expecting %q, got %q", n+1, expecting, out)
		}
	}
}

func TestSubstituteSVGDataURIsPassthrough(t *testing.T) {
	const js = "\"a{b:url(data:image/png;base64,AAAA)}\""

	out, err := substituteSVGDataURIs(js)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if out != js {
		t.Errorf("expecting source unchanged, got %q", out)
	}
}

func TestSubstituteSVGDataURIsEmptyDocument(t *testing.T) {
	out, err := substituteSVGDataURIs("\"a{b:url(data:image/svg+xml,)}\"")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if expecting := "\"a{b:\" + createSVG() + \"}\""; out != expecting {
		t.Errorf("expecting %q, got %q", expecting, out)
	}
}

func TestSubstituteSVGDataURIsMalformed(t *testing.T) {
	for n, doc := range []string{
		"<svg><rect></svg>",
		"<svg/><svg/>",
	} {
		js := "\"a{b:url(" + svgURI(doc) + ")}\""

		if _, err := substituteSVGDataURIs(js); !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("test %d: expecting ErrMalformedDocument, got %v", n+1, err)
		}
	}
}

func TestParseSVGNoRoot(t *testing.T) {
	root, err := parseSVG(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if root != nil {
		t.Errorf("expecting no root element, got %v", root)
	}
}
