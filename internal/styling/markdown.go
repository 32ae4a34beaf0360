package styling

import (
	"sort"
	"strings"
)

// Markdown delimiters, matching the dialect Telegram clients use rather
// than CommonMark: ** is bold (not strong emphasis), __ is italic,
// -- is underline and ~~ is strikethrough.
const (
	boldDelim      = "**"
	italicDelim    = "__"
	underlineDelim = "--"
	strikeDelim    = "~~"
	codeDelim      = "`"
	preDelim       = "```"
)

var markdownTags = map[string]string{
	boldDelim:      "b",
	italicDelim:    "i",
	underlineDelim: "u",
	strikeDelim:    "s",
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// markdownToHTML rewrites Markdown delimiters into intermediate HTML tags,
// so a single HTML pass can resolve both syntaxes. Unmatched delimiters are
// kept as literal text. Code and pre bodies are escaped so their content
// survives the HTML pass untouched.
//
// With escapeAll set, every non-tag chunk of the output is HTML-escaped as
// well; this is how Markdown-only mode keeps raw HTML in the input literal.
func markdownToHTML(text string, escapeAll bool) string {
	var b strings.Builder
	b.Grow(len(text))

	literal := func(s string) {
		if escapeAll {
			b.WriteString(htmlEscaper.Replace(s))
			return
		}
		b.WriteString(s)
	}

	// Output offset of the open tag for each delimiter currently open.
	// The lookahead below only proves a delimiter occurs again somewhere
	// ahead; the occurrence may be swallowed by a code span or a link, so
	// openers that never close are reverted to literal text at the end.
	openAt := make(map[string]int, len(markdownTags))

	i := 0
	for i < len(text) {
		switch {
		case strings.HasPrefix(text[i:], preDelim):
			end := strings.Index(text[i+len(preDelim):], preDelim)
			if end <= 0 {
				literal(preDelim)
				i += len(preDelim)
				continue
			}
			body := text[i+len(preDelim) : i+len(preDelim)+end]
			lang := ""
			if nl := strings.IndexByte(body, '\n'); nl > 0 {
				if first := body[:nl]; !strings.ContainsAny(first, " \t") {
					lang, body = first, body[nl+1:]
				}
			}
			if lang != "" {
				b.WriteString(`<pre language="`)
				b.WriteString(attrEscaper.Replace(lang))
				b.WriteString(`">`)
			} else {
				b.WriteString("<pre>")
			}
			b.WriteString(htmlEscaper.Replace(body))
			b.WriteString("</pre>")
			i += 2*len(preDelim) + end

		case text[i] == '`':
			end := strings.Index(text[i+1:], codeDelim)
			if end <= 0 {
				literal(codeDelim)
				i++
				continue
			}
			b.WriteString("<code>")
			b.WriteString(htmlEscaper.Replace(text[i+1 : i+1+end]))
			b.WriteString("</code>")
			i += end + 2

		case text[i] == '[':
			inner, url, size, ok := matchLink(text[i:])
			if !ok {
				literal("[")
				i++
				continue
			}
			b.WriteString(`<a href="`)
			b.WriteString(attrEscaper.Replace(url))
			b.WriteString(`">`)
			b.WriteString(markdownToHTML(inner, escapeAll))
			b.WriteString("</a>")
			i += size

		default:
			if i+2 <= len(text) {
				delim := text[i : i+2]
				if tag, known := markdownTags[delim]; known {
					switch {
					case hasOpen(openAt, delim):
						b.WriteString("</" + tag + ">")
						delete(openAt, delim)
					case strings.Contains(text[i+2:], delim):
						openAt[delim] = b.Len()
						b.WriteString("<" + tag + ">")
					default:
						literal(delim)
					}
					i += 2
					continue
				}
			}
			literal(text[i : i+1])
			i++
		}
	}

	return revertUnclosed(b.String(), openAt)
}

func hasOpen(openAt map[string]int, delim string) bool {
	_, ok := openAt[delim]
	return ok
}

// revertUnclosed replaces the open tags of spans that never closed with
// their original delimiter characters, so no input text is lost.
func revertUnclosed(out string, openAt map[string]int) string {
	if len(openAt) == 0 {
		return out
	}

	type unclosed struct {
		pos   int
		delim string
	}
	reverts := make([]unclosed, 0, len(openAt))
	for delim, pos := range openAt {
		reverts = append(reverts, unclosed{pos: pos, delim: delim})
	}
	sort.Slice(reverts, func(i, j int) bool { return reverts[i].pos < reverts[j].pos })

	var fixed strings.Builder
	fixed.Grow(len(out))
	prev := 0
	for _, r := range reverts {
		fixed.WriteString(out[prev:r.pos])
		fixed.WriteString(r.delim)
		prev = r.pos + len(markdownTags[r.delim]) + 2 // skip the written tag
	}
	fixed.WriteString(out[prev:])
	return fixed.String()
}

// matchLink matches an inline [text](url) link at the start of s.
// Returns the link text, the target URL and the number of bytes consumed.
func matchLink(s string) (inner, url string, size int, ok bool) {
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen := strings.IndexByte(s[closeBracket+2:], ')')
	if closeParen < 0 {
		return "", "", 0, false
	}
	inner = s[1:closeBracket]
	url = s[closeBracket+2 : closeBracket+2+closeParen]
	if inner == "" || url == "" {
		return "", "", 0, false
	}
	return inner, url, closeBracket + closeParen + 3, true
}
