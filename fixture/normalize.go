package fixture

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// unquoteSteps are applied one after another, in order. Backslashes go
// first, so escaped quotes are already plain quotes by the time quoting
// around object and array literals is removed.
var unquoteSteps = [][2]string{
	{`\`, ""},
	{`"{`, "{"},
	{`}"`, "}"},
	{`"[`, "["},
	{`]"`, "]"},
	{`""`, `"`},
}

// NormalizeJSONString decodes raw as UTF-8 and strips escaping and
// redundant quoting from it. This is plain substitution: the result is
// not guaranteed to be well-formed JSON.
func NormalizeJSONString(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: input is not valid utf-8", ErrDecode)
	}

	s := string(raw)
	for _, step := range unquoteSteps {
		s = strings.ReplaceAll(s, step[0], step[1])
	}

	return s, nil
}
