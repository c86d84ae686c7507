package inliner

import "regexp"

// dataURL matches a url() wrapper holding a data URI in double-quoted,
// single-quoted, or bare form. The bare form cannot contain parentheses.
var dataURL = regexp.MustCompile(`url\((?:"(data:[^"]+)"|'(data:[^']+)'|(data:[^()]+))\)`)

// encodeCSSDataURIs rewrites every data URI inside url() to Base64, giving
// the payload a fixed safe alphabet before the stylesheet is embedded in a
// string literal. Already-Base64 URIs are a fixed point.
func encodeCSSDataURIs(css string) (string, error) {
	return replaceAllSubmatch(dataURL, css, func(m []int) (string, error) {
		uri, _ := matchValue(css, m)

		content, err := DecodeDataURI(uri)
		if err != nil {
			return "", err
		}

		encoded, err := EncodeDataURI(content.MimeType, content.Data, "", EncodingBase64)
		if err != nil {
			return "", err
		}

		return "url(" + encoded + ")", nil
	})
}

// matchValue returns the text of the first participating capture group.
func matchValue(src string, m []int) (string, bool) {
	for g := 2; g < len(m); g += 2 {
		if m[g] >= 0 {
			return src[m[g]:m[g+1]], true
		}
	}

	return "", false
}
