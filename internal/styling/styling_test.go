package styling

import (
	"context"
	"fmt"
	"testing"

	"github.com/gotd/td/tg"
)

// entitySummary renders an entity as "kind@offset+length[:arg]" for
// compact test expectations.
func entitySummary(e tg.MessageEntityClass) string {
	switch v := e.(type) {
	case *tg.MessageEntityBold:
		return fmt.Sprintf("bold@%d+%d", v.Offset, v.Length)
	case *tg.MessageEntityItalic:
		return fmt.Sprintf("italic@%d+%d", v.Offset, v.Length)
	case *tg.MessageEntityUnderline:
		return fmt.Sprintf("underline@%d+%d", v.Offset, v.Length)
	case *tg.MessageEntityStrike:
		return fmt.Sprintf("strike@%d+%d", v.Offset, v.Length)
	case *tg.MessageEntityCode:
		return fmt.Sprintf("code@%d+%d", v.Offset, v.Length)
	case *tg.MessageEntityPre:
		if v.Language != "" {
			return fmt.Sprintf("pre@%d+%d:%s", v.Offset, v.Length, v.Language)
		}
		return fmt.Sprintf("pre@%d+%d", v.Offset, v.Length)
	case *tg.MessageEntityTextURL:
		return fmt.Sprintf("link@%d+%d:%s", v.Offset, v.Length, v.URL)
	case *tg.InputMessageEntityMentionName:
		user, _ := v.UserID.(*tg.InputUser)
		return fmt.Sprintf("mention@%d+%d:%d", v.Offset, v.Length, user.UserID)
	default:
		return fmt.Sprintf("%T", e)
	}
}

type staticResolver struct {
	users map[string]int64
}

func (r staticResolver) ResolveUser(_ context.Context, token string) (tg.InputUserClass, error) {
	id, ok := r.users[token]
	if !ok {
		return nil, fmt.Errorf("user %q not found", token)
	}
	return &tg.InputUser{UserID: id}, nil
}

func TestParse(t *testing.T) {
	resolver := staticResolver{users: map[string]int64{
		"777":     777,
		"haskell": 23122162,
	}}
	parser := NewParser(resolver)

	tests := []struct {
		name     string
		input    string
		mode     Mode
		want     string
		entities []string
	}{
		{
			name:  "disabled mode passthrough",
			input: "**not parsed** <b>at all</b>",
			mode:  ModeDisabled,
			want:  "**not parsed** <b>at all</b>",
		},
		{
			name:     "markdown bold",
			input:    "Thanks for creating **Pyrogram**!",
			mode:     ModeCombined,
			want:     "Thanks for creating Pyrogram!",
			entities: []string{"bold@20+8"},
		},
		{
			name:     "html bold and italic",
			input:    "<b>bold</b> and <i>italic</i>",
			mode:     ModeHTML,
			want:     "bold and italic",
			entities: []string{"bold@0+4", "italic@9+6"},
		},
		{
			name:     "markdown and html combined",
			input:    "**bold** and <i>italic</i>",
			mode:     ModeCombined,
			want:     "bold and italic",
			entities: []string{"bold@0+4", "italic@9+6"},
		},
		{
			name:     "nested different kinds overlap",
			input:    "**bold __both__** tail",
			mode:     ModeCombined,
			want:     "bold both tail",
			entities: []string{"bold@0+9", "italic@5+4"},
		},
		{
			name:     "offsets in utf16 units after emoji",
			input:    "\U0001F525 **hot**",
			mode:     ModeCombined,
			want:     "\U0001F525 hot",
			entities: []string{"bold@3+3"},
		},
		{
			name:     "same kind nesting collapses",
			input:    "<b>one <b>two</b> three</b>",
			mode:     ModeHTML,
			want:     "one two three",
			entities: []string{"bold@0+13"},
		},
		{
			name:     "markdown only keeps html literal",
			input:    "**bold** <i>x</i>",
			mode:     ModeMarkdown,
			want:     "bold <i>x</i>",
			entities: []string{"bold@0+4"},
		},
		{
			name:     "html only keeps markdown literal",
			input:    "**raw** <b>x</b>",
			mode:     ModeHTML,
			want:     "**raw** x",
			entities: []string{"bold@8+1"},
		},
		{
			name:  "unmatched markdown delimiter stays literal",
			input: "a ** b",
			mode:  ModeCombined,
			want:  "a ** b",
		},
		{
			name:     "opener whose closer is inside code stays literal",
			input:    "**a `**` b",
			mode:     ModeCombined,
			want:     "**a ** b",
			entities: []string{"code@4+2"},
		},
		{
			name:     "opener whose closer is inside a link stays literal",
			input:    "__a [b__](https://example.com)",
			mode:     ModeCombined,
			want:     "__a b__",
			entities: []string{"link@4+3:https://example.com"},
		},
		{
			name:  "unknown tag stays literal",
			input: "a <div>x</div>",
			mode:  ModeHTML,
			want:  "a <div>x</div>",
		},
		{
			name:  "orphan close tag is dropped",
			input: "a </b> b",
			mode:  ModeHTML,
			want:  "a  b",
		},
		{
			name:     "underline and strikethrough",
			input:    "--under-- and ~~gone~~",
			mode:     ModeCombined,
			want:     "under and gone",
			entities: []string{"underline@0+5", "strike@10+4"},
		},
		{
			name:     "inline code keeps content literal",
			input:    "run `x := <y>` now",
			mode:     ModeCombined,
			want:     "run x := <y> now",
			entities: []string{"code@4+8"},
		},
		{
			name:     "pre block",
			input:    "```let x```",
			mode:     ModeCombined,
			want:     "let x",
			entities: []string{"pre@0+5"},
		},
		{
			name:     "pre block with language",
			input:    "```go\nfmt.Println()\n```",
			mode:     ModeCombined,
			want:     "fmt.Println()\n",
			entities: []string{"pre@0+14:go"},
		},
		{
			name:     "pre first line with spaces is not a language",
			input:    "```not a lang\nbody```",
			mode:     ModeCombined,
			want:     "not a lang\nbody",
			entities: []string{"pre@0+15"},
		},
		{
			name:     "markdown link",
			input:    "see [docs](https://example.com) here",
			mode:     ModeCombined,
			want:     "see docs here",
			entities: []string{"link@4+4:https://example.com"},
		},
		{
			name:     "html link",
			input:    `<a href="https://example.com">docs</a>`,
			mode:     ModeHTML,
			want:     "docs",
			entities: []string{"link@0+4:https://example.com"},
		},
		{
			name:     "text mention by id",
			input:    "[dan](tg://user?id=777)",
			mode:     ModeCombined,
			want:     "dan",
			entities: []string{"mention@0+3:777"},
		},
		{
			name:     "text mention by username",
			input:    `<a href="@haskell">dan</a>`,
			mode:     ModeHTML,
			want:     "dan",
			entities: []string{"mention@0+3:23122162"},
		},
		{
			name:  "unresolvable mention degrades to plain text",
			input: "[ghost](tg://user?id=404)",
			mode:  ModeCombined,
			want:  "ghost",
		},
		{
			name:     "character references decode",
			input:    "&lt;b&gt; <b>x</b>",
			mode:     ModeHTML,
			want:     "<b> x",
			entities: []string{"bold@4+1"},
		},
		{
			name:  "empty span emits no entity",
			input: "<b></b>done",
			mode:  ModeHTML,
			want:  "done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, entities, err := parser.Parse(context.Background(), tt.input, tt.mode)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if plain != tt.want {
				t.Errorf("Parse(%q) text = %q, want %q", tt.input, plain, tt.want)
			}
			if len(entities) != len(tt.entities) {
				t.Fatalf("Parse(%q) entities = %v, want %v", tt.input, describeEntities(entities), tt.entities)
			}
			for i, e := range entities {
				if got := entitySummary(e); got != tt.entities[i] {
					t.Errorf("Parse(%q) entity %d = %s, want %s", tt.input, i, got, tt.entities[i])
				}
			}
		})
	}
}

func describeEntities(entities []tg.MessageEntityClass) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = entitySummary(e)
	}
	return out
}

func TestParseOffsetsMonotonic(t *testing.T) {
	parser := NewParser(nil)
	input := "**a** plain <i>b</i> `c` [d](https://e.com) --f--"

	_, entities, err := parser.Parse(context.Background(), input, ModeCombined)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(entities) == 0 {
		t.Fatal("expected entities")
	}

	last := -1
	for i, e := range entities {
		offset := entityOffset(t, e)
		if offset < last {
			t.Errorf("entity %d offset %d decreases below %d", i, offset, last)
		}
		last = offset
	}
}

func entityOffset(t *testing.T, e tg.MessageEntityClass) int {
	t.Helper()
	switch v := e.(type) {
	case *tg.MessageEntityBold:
		return v.Offset
	case *tg.MessageEntityItalic:
		return v.Offset
	case *tg.MessageEntityUnderline:
		return v.Offset
	case *tg.MessageEntityStrike:
		return v.Offset
	case *tg.MessageEntityCode:
		return v.Offset
	case *tg.MessageEntityPre:
		return v.Offset
	case *tg.MessageEntityTextURL:
		return v.Offset
	default:
		t.Fatalf("unexpected entity type %T", e)
		return 0
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: ModeCombined},
		{input: "combined", want: ModeCombined},
		{input: "markdown", want: ModeMarkdown},
		{input: "md", want: ModeMarkdown},
		{input: "HTML", want: ModeHTML},
		{input: "none", want: ModeDisabled},
		{input: "disabled", want: ModeDisabled},
		{input: "bbcode", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
