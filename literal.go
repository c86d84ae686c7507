package inliner

import (
	"fmt"
	"regexp"
	"strings"
)

// argList matches a call argument list holding exactly one string literal:
// double-quoted, single-quoted, or back-quoted. The grammar has no escape
// handling; a literal containing a same-kind quote will not match.
const argList = `\((?:"([^"]+)"|'([^']+)'|` + "`([^`]+)`" + `)\)`

// substituteMarkerCalls rewrites every marker(<literal>) call in src,
// passing the literal's value to repl and splicing its result in place of
// the whole call. Matches are leftmost, non-overlapping, and replacements
// are never rescanned.
func substituteMarkerCalls(src, marker string, repl func(literal string) (string, error)) (string, error) {
	re := regexp.MustCompile(regexp.QuoteMeta(marker) + argList)

	return replaceAllSubmatch(re, src, func(m []int) (string, error) {
		literal, err := literalValue(src, m)
		if err != nil {
			return "", err
		}

		return repl(literal)
	})
}

func literalValue(src string, m []int) (string, error) {
	switch {
	case m[2] >= 0:
		return src[m[2]:m[3]], nil
	case m[4] >= 0:
		return src[m[4]:m[5]], nil
	case m[6] >= 0:
		value := src[m[6]:m[7]]

		if strings.Contains(value, "${") {
			return "", fmt.Errorf("error extracting %q: %w", src[m[0]:m[1]], ErrUnsupportedTemplate)
		}

		return value, nil
	}

	return "", fmt.Errorf("error extracting %q: %w", src[m[0]:m[1]], ErrUnsupportedLiteral)
}

// replaceAllSubmatch rebuilds src, substituting each match of re with the
// result of repl, which receives the submatch index pairs.
func replaceAllSubmatch(re *regexp.Regexp, src string, repl func(m []int) (string, error)) (string, error) {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, nil
	}

	var b strings.Builder

	last := 0

	for _, m := range matches {
		r, err := repl(m)
		if err != nil {
			return "", err
		}

		b.WriteString(src[last:m[0]])
		b.WriteString(r)

		last = m[1]
	}

	b.WriteString(src[last:])

	return b.String(), nil
}
