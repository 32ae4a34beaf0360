// Package styling converts styled message text (Markdown, HTML or both)
// into plain text plus Telegram message entities.
//
// Offsets and lengths of the produced entities are measured in UTF-16
// code units, matching the MTProto string-length convention.
package styling

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gotd/td/tg"
)

// Mode selects which markup syntaxes the parser interprets.
type Mode int

const (
	// ModeCombined interprets Markdown and HTML together: Markdown
	// delimiters are rewritten into intermediate HTML tags first, then a
	// single HTML pass resolves both.
	ModeCombined Mode = iota
	// ModeMarkdown interprets Markdown only; raw HTML stays literal.
	ModeMarkdown
	// ModeHTML interprets HTML only.
	ModeHTML
	// ModeDisabled performs no markup interpretation at all.
	ModeDisabled
)

// ParseMode maps a user-supplied mode name to a Mode.
// An empty string selects the combined default.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "combined":
		return ModeCombined, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "html":
		return ModeHTML, nil
	case "none", "disabled":
		return ModeDisabled, nil
	}
	return 0, fmt.Errorf("unknown parse mode %q (want combined, markdown, html or none)", s)
}

// UserResolver resolves a mention token (a numeric user ID or an
// @username) to an input user usable in a mention entity.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (tg.InputUserClass, error)
}

// Parser turns styled text into plain text and message entities.
// The zero-value users resolver may be nil, in which case text-mention
// links degrade to plain text.
type Parser struct {
	users UserResolver
}

// NewParser creates a Parser. users may be nil.
func NewParser(users UserResolver) *Parser {
	return &Parser{users: users}
}

// Parse converts text according to mode. Malformed markup never fails:
// anything unrecognized is kept as literal text, and a mention that cannot
// be resolved degrades to plain text. The returned error is non-nil only
// when ctx is canceled while resolving mentions.
func (p *Parser) Parse(ctx context.Context, text string, mode Mode) (string, []tg.MessageEntityClass, error) {
	var (
		plain string
		spans []span
	)

	switch mode {
	case ModeDisabled:
		return text, nil, nil
	case ModeHTML:
		plain, spans = parseHTML(text)
	case ModeMarkdown:
		plain, spans = parseHTML(markdownToHTML(text, true))
	default:
		plain, spans = parseHTML(markdownToHTML(text, false))
	}

	entities, err := p.materialize(ctx, collapse(spans))
	if err != nil {
		return "", nil, err
	}
	return plain, entities, nil
}

// collapse merges overlapping or touching spans of the same kind (and same
// link target or pre language) into one span covering the union range,
// then orders everything by ascending offset.
func collapse(spans []span) []span {
	if len(spans) < 2 {
		return spans
	}

	type key struct {
		kind spanKind
		arg  string
	}
	groups := make(map[key][]span)
	for _, s := range spans {
		k := key{kind: s.kind, arg: s.arg}
		groups[k] = append(groups[k], s)
	}

	merged := make([]span, 0, len(spans))
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			if group[i].start != group[j].start {
				return group[i].start < group[j].start
			}
			return group[i].length > group[j].length
		})
		cur := group[0]
		for _, s := range group[1:] {
			if s.start <= cur.start+cur.length {
				if end := s.start + s.length; end > cur.start+cur.length {
					cur.length = end - cur.start
				}
				continue
			}
			merged = append(merged, cur)
			cur = s
		}
		merged = append(merged, cur)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].start != merged[j].start {
			return merged[i].start < merged[j].start
		}
		return merged[i].length > merged[j].length
	})
	return merged
}

// mentionToken extracts the user token from a link target, if the link is
// a text mention: tg://user?id=N or an @username.
func mentionToken(href string) (string, bool) {
	if id, found := strings.CutPrefix(href, "tg://user?id="); found {
		return id, true
	}
	if strings.HasPrefix(href, "@") {
		return href, true
	}
	return "", false
}

// materialize converts spans into wire entities. Text-mention links go
// through the user resolver; a failed resolution drops the entity and
// keeps the text.
func (p *Parser) materialize(ctx context.Context, spans []span) ([]tg.MessageEntityClass, error) {
	if len(spans) == 0 {
		return nil, nil
	}

	entities := make([]tg.MessageEntityClass, 0, len(spans))
	for _, s := range spans {
		switch s.kind {
		case kindBold:
			entities = append(entities, &tg.MessageEntityBold{Offset: s.start, Length: s.length})
		case kindItalic:
			entities = append(entities, &tg.MessageEntityItalic{Offset: s.start, Length: s.length})
		case kindUnderline:
			entities = append(entities, &tg.MessageEntityUnderline{Offset: s.start, Length: s.length})
		case kindStrike:
			entities = append(entities, &tg.MessageEntityStrike{Offset: s.start, Length: s.length})
		case kindCode:
			entities = append(entities, &tg.MessageEntityCode{Offset: s.start, Length: s.length})
		case kindPre:
			entities = append(entities, &tg.MessageEntityPre{Offset: s.start, Length: s.length, Language: s.arg})
		case kindLink:
			if s.arg == "" {
				continue
			}
			if token, isMention := mentionToken(s.arg); isMention {
				user, err := p.resolveUser(ctx, token)
				if err != nil {
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					continue // degrade to plain text
				}
				entities = append(entities, &tg.InputMessageEntityMentionName{
					Offset: s.start,
					Length: s.length,
					UserID: user,
				})
				continue
			}
			entities = append(entities, &tg.MessageEntityTextURL{Offset: s.start, Length: s.length, URL: s.arg})
		}
	}
	return entities, nil
}

func (p *Parser) resolveUser(ctx context.Context, token string) (tg.InputUserClass, error) {
	if p.users == nil {
		return nil, fmt.Errorf("no user resolver configured")
	}
	token = strings.TrimPrefix(token, "@")
	if token == "" {
		return nil, fmt.Errorf("empty mention token")
	}
	return p.users.ResolveUser(ctx, token)
}
