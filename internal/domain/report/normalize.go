package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeAnswer converts a raw answer value into its canonical display
// string. Lists are joined with ", ", embedded newlines collapse to ". ",
// and strings that look like a stringified list literal are parsed back into
// elements (falling back to bracket/quote stripping when the literal is
// malformed). Absent values (nil) render as the empty string. The function
// is idempotent over its own output, with the accepted edge case that an
// answer which naturally starts with "[" and ends with "]" re-triggers the
// list heuristic.
func NormalizeAnswer(v any) string {
	switch t := v.(type) {
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = displayString(item)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(t, ", ")
	case string:
		s := strings.ReplaceAll(t, "\r\n", ". ")
		s = strings.ReplaceAll(s, "\n", ". ")
		if len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			if items, ok := parseListLiteral(s); ok {
				return strings.Join(items, ", ")
			}
			s = strings.Trim(s, "[]")
			s = strings.ReplaceAll(s, "'", "")
			s = strings.ReplaceAll(s, `"`, "")
			return strings.TrimSpace(s)
		}
		return s
	default:
		return displayString(v)
	}
}

// parseListLiteral parses a bracketed list literal of quoted strings and
// bare numeric/constant tokens, the shape a multi-select answer takes when
// the backend has stringified it. ok is false when the content does not
// follow that restricted grammar, in which case the caller falls back to
// stripping brackets and quotes.
func parseListLiteral(s string) ([]string, bool) {
	inner := s[1 : len(s)-1]
	items := []string{}
	i, n := 0, len(inner)
	for {
		for i < n && isSpace(inner[i]) {
			i++
		}
		if i >= n {
			break
		}
		if c := inner[i]; c == '\'' || c == '"' {
			i++
			var b strings.Builder
			closed := false
			for i < n {
				ch := inner[i]
				if ch == '\\' && i+1 < n {
					i++
					b.WriteByte(inner[i])
					i++
					continue
				}
				if ch == c {
					closed = true
					i++
					break
				}
				b.WriteByte(ch)
				i++
			}
			if !closed {
				return nil, false
			}
			items = append(items, b.String())
		} else {
			start := i
			for i < n && inner[i] != ',' {
				i++
			}
			token := strings.TrimSpace(inner[start:i])
			if !isBareToken(token) {
				return nil, false
			}
			items = append(items, token)
		}
		for i < n && isSpace(inner[i]) {
			i++
		}
		if i < n {
			if inner[i] != ',' {
				return nil, false
			}
			i++
		}
	}
	return items, true
}

func isBareToken(token string) bool {
	switch token {
	case "":
		return false
	case "True", "False", "None":
		return true
	}
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func displayString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
