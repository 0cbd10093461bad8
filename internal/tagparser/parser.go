package tagparser

import "strings"

// Tag is a parsed struct tag value such as `approx:"-,epsilon:1e-3"`.
type Tag struct {
	Name    string
	Options map[string][]string
}

func (t Tag) IsZero() bool {
	return t.Name == "" && t.Options == nil
}

func (t Tag) HasOption(name string) bool {
	_, ok := t.Options[name]
	return ok
}

// Option returns the first value of the option with the given name.
func (t Tag) Option(name string) (string, bool) {
	if vs, ok := t.Options[name]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

func (t *Tag) addOption(key, value string) {
	if t.Options == nil {
		t.Options = make(map[string][]string)
	}
	t.Options[key] = append(t.Options[key], value)
}

// Parse parses a tag of the form `name,opt,key:value,key:"quoted value"`.
// The first comma-separated item without a colon is the name. Values may be
// double-quoted to protect commas and colons; parentheses also group, so
// `fn(a, b)` is a single value.
func Parse(tag string) Tag {
	p := parser{s: tag}
	return p.parse()
}

type parser struct {
	s string
	i int
}

func (p *parser) valid() bool {
	return p.i < len(p.s)
}

func (p *parser) peek() byte {
	if p.valid() {
		return p.s[p.i]
	}
	return 0
}

func (p *parser) parse() Tag {
	var tag Tag
	for first := true; p.valid() || first; first = false {
		if !p.parseItem(&tag, first) {
			return tag
		}
	}
	return tag
}

// parseItem consumes one comma-separated item and the trailing comma.
// It reports false when the tag is malformed and parsing should stop.
func (p *parser) parseItem(tag *Tag, first bool) bool {
	if first && p.peek() == '"' {
		name, ok := p.parseQuoted()
		if !ok {
			return false
		}
		tag.Name = name
		p.skipComma()
		return true
	}

	item, delim := p.readUntil(",:")
	switch delim {
	case ':':
		value, ok := p.parseValue()
		if !ok {
			return false
		}
		tag.addOption(item, value)
	default:
		if first {
			tag.Name = item
		} else if item != "" {
			tag.addOption(item, "")
		}
	}
	return true
}

func (p *parser) parseValue() (string, bool) {
	if p.peek() == '"' {
		value, ok := p.parseQuoted()
		if !ok {
			return "", false
		}
		p.skipComma()
		return value, true
	}

	var b strings.Builder
	depth := 0
	for p.valid() {
		c := p.s[p.i]
		p.i++
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return b.String(), true
			}
		}
		if c != ',' || depth > 0 {
			b.WriteByte(c)
		}
	}
	return b.String(), true
}

// parseQuoted consumes a double-quoted string including the quotes.
// It reports false when the closing quote is missing.
func (p *parser) parseQuoted() (string, bool) {
	p.i++ // opening quote
	var b strings.Builder
	for p.valid() {
		c := p.s[p.i]
		p.i++
		switch c {
		case '\\':
			if p.valid() {
				b.WriteByte(p.s[p.i])
				p.i++
			}
		case '"':
			return b.String(), true
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}

func (p *parser) readUntil(delims string) (string, byte) {
	start := p.i
	for p.valid() {
		c := p.s[p.i]
		if strings.IndexByte(delims, c) != -1 {
			p.i++
			return p.s[start : p.i-1], c
		}
		p.i++
	}
	return p.s[start:], 0
}

func (p *parser) skipComma() {
	if p.peek() == ',' {
		p.i++
	}
}
