package docindex

import (
	"regexp"
	"strings"
)

var signatureRe = regexp.MustCompile(`\w+\(([^)]*)\)`)

// ParseSignature extracts parameter names from a title such as
// "foo(a, b) → number". Only the first parenthesized group that follows an
// identifier is used. An empty group yields an empty, non-nil slice.
// A title without any such group returns EINVALID.
func ParseSignature(title string) ([]string, error) {
	m := signatureRe.FindStringSubmatch(title)
	if m == nil {
		return nil, Errorf(EINVALID, "title %q has no signature", title)
	}

	if strings.TrimSpace(m[1]) == "" {
		return []string{}, nil
	}

	parts := strings.Split(m[1], ",")
	params := make([]string, len(parts))
	for i, p := range parts {
		params[i] = strings.TrimSpace(p)
	}
	return params, nil
}
