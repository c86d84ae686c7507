package inliner

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	svgMimeType  = "image/svg+xml"
	svgNamespace = "http://www.w3.org/2000/svg"
)

type svgNode struct {
	tag      string
	attrs    []svgAttr
	children []*svgNode
}

type svgAttr struct {
	name, value string
}

// substituteSVGDataURIs replaces every url() holding an image/svg+xml data
// URI with a createSVG call expression built from the parsed document. The
// replacement closes and reopens the surrounding string literal, so it must
// be spliced inside an already-open double-quoted string. Data URIs of any
// other MIME type pass through unchanged.
func substituteSVGDataURIs(js string) (string, error) {
	return replaceAllSubmatch(dataURL, js, func(m []int) (string, error) {
		uri, _ := matchValue(js, m)

		content, err := DecodeDataURI(uri)
		if err != nil {
			return "", err
		}

		if content.MimeType != svgMimeType {
			return js[m[0]:m[1]], nil
		}

		root, err := parseSVG(content.Data)
		if err != nil {
			return "", err
		}

		var b strings.Builder

		b.WriteString(`" + createSVG(`)

		if root != nil {
			writeSVGCall(&b, root)
		}

		b.WriteString(`) + "`)

		return b.String(), nil
	})
}

// parseSVG builds an ordered element tree from the document bytes. A
// document with no root element returns nil, which transcodes to an empty
// createSVG call.
func parseSVG(data []byte) (*svgNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *svgNode
		stack []*svgNode
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("error parsing svg document (%v): %w", err, ErrMalformedDocument)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &svgNode{tag: xmlName(t.Name)}

			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Space == "" && a.Name.Local == "xmlns" {
					continue
				}

				n.attrs = append(n.attrs, svgAttr{xmlName(a.Name), a.Value})
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("error parsing svg document (multiple root elements): %w", ErrMalformedDocument)
				}

				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}

			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	return root, nil
}

// xmlName strips the implicit svg namespace; names in any other namespace
// keep the {uri}local form.
func xmlName(name xml.Name) string {
	if name.Space == "" || name.Space == svgNamespace {
		return name.Local
	}

	return "{" + name.Space + "}" + name.Local
}

func writeSVGCall(b *strings.Builder, n *svgNode) {
	b.WriteString(`SVG(`)
	b.WriteString(strconv.Quote(n.tag))
	b.WriteString(", {")

	for i, a := range n.attrs {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(strconv.Quote(a.name))
		b.WriteByte(':')
		b.WriteString(strconv.Quote(a.value))
	}

	b.WriteByte('}')

	for _, c := range n.children {
		b.WriteString(", ")
		writeSVGCall(b, c)
	}

	b.WriteByte(')')
}
