// Package inliner rewrites javascript source for the browser, replacing
// stylesheet file references and inline stylesheet literals with minified
// style-construction expressions, and embedded svg data URIs with runtime
// construction calls.
package inliner

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

// Marker functions recognised in the source. The transformed output assumes
// createStyle and createSVG exist in the target environment.
const (
	stylesheetMarker = "createStylesheet"
	styleMarker      = "createStyle"
)

var minifier = minify.New()

func init() {
	minifier.AddFunc("text/css", css.Minify)
}

func minifyCSS(s string) (string, error) {
	return minifier.String("text/css", s)
}

type config struct {
	load   func(path string) (string, error)
	minify func(css string) (string, error)
}

// Option is a configuration option for Inline.
type Option func(*config)

// Loader sets the function used to read stylesheet files referenced by
// createStylesheet calls.
func Loader(load func(path string) (string, error)) Option {
	return func(c *config) {
		c.load = load
	}
}

// OSLoad creates a stylesheet loader rooted at the given base directory.
func OSLoad(base string) func(string) (string, error) {
	return func(path string) (string, error) {
		data, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(path)))
		if err != nil {
			return "", fmt.Errorf("error reading stylesheet: %w", err)
		}

		return string(data), nil
	}
}

// Minifier replaces the default CSS minifier. The replacement must leave CSS
// semantics unchanged.
func Minifier(minify func(css string) (string, error)) Option {
	return func(c *config) {
		c.minify = minify
	}
}

// Inline transforms javascript source in two passes: createStylesheet calls
// referencing an external stylesheet file become minified createStyle
// expressions with embedded svg images transcoded to createSVG calls, then
// createStyle calls holding an inline stylesheet literal are minified in
// place. The source is never mutated; a new string is returned.
func Inline(source string, opts ...Option) (string, error) {
	c := config{minify: minifyCSS}

	for _, o := range opts {
		o(&c)
	}

	source, err := c.substituteStylesheetFiles(source)
	if err != nil {
		return "", err
	}

	return c.substituteStyleText(source)
}

func (c *config) substituteStylesheetFiles(js string) (string, error) {
	return substituteMarkerCalls(js, stylesheetMarker, func(path string) (string, error) {
		if c.load == nil {
			return "", fmt.Errorf("error resolving %q: %w", path, ErrNoLoader)
		}

		text, err := c.load(path)
		if err != nil {
			return "", err
		}

		// Base64 first, so the payload never needs quoting once the
		// stylesheet is embedded in a string literal.
		text, err = encodeCSSDataURIs(text)
		if err != nil {
			return "", err
		}

		call, err := c.styleCall(text)
		if err != nil {
			return "", err
		}

		return substituteSVGDataURIs(call)
	})
}

func (c *config) substituteStyleText(js string) (string, error) {
	return substituteMarkerCalls(js, styleMarker, c.styleCall)
}

func (c *config) styleCall(text string) (string, error) {
	minified, err := c.minify(text)
	if err != nil {
		return "", err
	}

	return styleMarker + "(" + strconv.Quote(minified) + ")", nil
}
