package styling

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// spanKind identifies a styled span produced by the HTML pass.
type spanKind int

const (
	kindBold spanKind = iota
	kindItalic
	kindUnderline
	kindStrike
	kindCode
	kindPre
	kindLink
)

// span is a styled range over the plain text. Offsets and lengths are in
// UTF-16 code units, the unit Telegram uses for entity positions.
type span struct {
	kind   spanKind
	start  int
	length int
	arg    string // href for links, language for pre blocks
}

// openSpan tracks a tag that has been opened but not yet closed.
type openSpan struct {
	kind  spanKind
	start int
	arg   string
}

var tagKinds = map[string]spanKind{
	"b": kindBold, "strong": kindBold,
	"i": kindItalic, "em": kindItalic,
	"u": kindUnderline, "ins": kindUnderline,
	"s": kindStrike, "strike": kindStrike, "del": kindStrike,
	"code": kindCode,
	"pre":  kindPre,
	"a":    kindLink,
}

// parseHTML strips the supported HTML tags from text and records the
// ranges they covered. Anything that does not look like a supported tag
// or a character reference is passed through as literal text; the parse
// itself never fails.
func parseHTML(text string) (string, []span) {
	var out strings.Builder
	out.Grow(len(text))

	var (
		pos   int // UTF-16 length of out
		stack []openSpan
		spans []span
	)

	emit := func(s string) {
		out.WriteString(s)
		pos += utf16Len(s)
	}

	i := 0
	for i < len(text) {
		switch text[i] {
		case '<':
			name, arg, closing, size, ok := parseTag(text[i:])
			if !ok {
				emit("<")
				i++
				continue
			}
			i += size
			kind, known := tagKinds[name]
			if !known {
				// Unrecognized tag: keep it as literal text.
				emit(text[i-size : i])
				continue
			}
			if !closing {
				stack = append(stack, openSpan{kind: kind, start: pos, arg: arg})
				continue
			}
			// Close the innermost open span of this kind. A close tag
			// with no matching open is dropped, as an HTML parser would.
			for j := len(stack) - 1; j >= 0; j-- {
				if stack[j].kind != kind {
					continue
				}
				if length := pos - stack[j].start; length > 0 {
					spans = append(spans, span{
						kind:   kind,
						start:  stack[j].start,
						length: length,
						arg:    stack[j].arg,
					})
				}
				stack = append(stack[:j], stack[j+1:]...)
				break
			}

		case '&':
			decoded, size, ok := decodeCharRef(text[i:])
			if !ok {
				emit("&")
				i++
				continue
			}
			emit(decoded)
			i += size

		default:
			_, size := utf8.DecodeRuneInString(text[i:])
			emit(text[i : i+size])
			i += size
		}
	}

	// Spans still open at the end of input never became valid ranges;
	// their text has already been emitted, so they are simply dropped.
	return out.String(), spans
}

// parseTag parses an opening or closing tag at the start of s.
// It reports ok=false when s does not look like a tag at all, in which
// case the leading '<' should be treated as literal text.
func parseTag(s string) (name, arg string, closing bool, size int, ok bool) {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", "", false, 0, false
	}
	inner := s[1:end]
	if inner == "" || strings.ContainsRune(inner, '<') {
		return "", "", false, 0, false
	}

	if inner[0] == '/' {
		name = strings.ToLower(strings.TrimSpace(inner[1:]))
		if name == "" {
			return "", "", false, 0, false
		}
		return name, "", true, end + 1, true
	}

	name = inner
	var attrs string
	if sp := strings.IndexAny(inner, " \t\n"); sp >= 0 {
		name, attrs = inner[:sp], inner[sp+1:]
	}
	name = strings.ToLower(name)

	switch name {
	case "a":
		arg = attrValue(attrs, "href")
	case "pre":
		arg = attrValue(attrs, "language")
	}
	return name, arg, false, end + 1, true
}

// attrValue extracts the value of a named attribute from a tag's attribute
// list. Supports double-quoted, single-quoted and bare values; character
// references inside the value are decoded.
func attrValue(attrs, name string) string {
	rest := attrs
	for rest != "" {
		rest = strings.TrimLeft(rest, " \t\n")
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			return ""
		}
		key := strings.ToLower(strings.TrimSpace(rest[:eq]))
		rest = strings.TrimLeft(rest[eq+1:], " \t\n")
		if rest == "" {
			return ""
		}

		var value string
		switch rest[0] {
		case '"', '\'':
			quote := rest[0]
			end := strings.IndexByte(rest[1:], quote)
			if end < 0 {
				return ""
			}
			value, rest = rest[1:1+end], rest[end+2:]
		default:
			end := strings.IndexAny(rest, " \t\n")
			if end < 0 {
				value, rest = rest, ""
			} else {
				value, rest = rest[:end], rest[end+1:]
			}
		}

		if key == name {
			return decodeCharRefs(value)
		}
	}
	return ""
}

var namedCharRefs = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": `"`,
	"apos": "'",
	"nbsp": " ",
}

// decodeCharRef decodes a single character reference at the start of s.
func decodeCharRef(s string) (decoded string, size int, ok bool) {
	end := strings.IndexByte(s, ';')
	if end < 2 || end > 12 {
		return "", 0, false
	}
	body := s[1:end]

	if body[0] == '#' {
		num := body[1:]
		base := 10
		if len(num) > 1 && (num[0] == 'x' || num[0] == 'X') {
			num, base = num[1:], 16
		}
		n, err := strconv.ParseInt(num, base, 32)
		if err != nil || n <= 0 || n > 0x10FFFF {
			return "", 0, false
		}
		return string(rune(n)), end + 1, true
	}

	if repl, known := namedCharRefs[body]; known {
		return repl, end + 1, true
	}
	return "", 0, false
}

// decodeCharRefs decodes every character reference in s.
func decodeCharRefs(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if decoded, size, ok := decodeCharRef(s[i:]); ok {
				b.WriteString(decoded)
				i += size
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// utf16Len returns the length of s in UTF-16 code units: characters
// outside the Basic Multilingual Plane count as two units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
