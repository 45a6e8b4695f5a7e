package cooklang

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatterEntry is one key/value pair from the YAML block, in
// document order so duplicate resolution against ">>" lines stays
// deterministic.
type frontMatterEntry struct {
	key   string
	value string
}

// splitFrontMatter strips a leading "---" fenced YAML block when front
// matter is enabled. It returns the remaining body plus the line and
// byte counts consumed, so grammar positions can be mapped back onto the
// original text. When the YAML is invalid the block is still consumed
// and the error describes it; lenient parsing records the error and
// moves on, strict parsing aborts.
func (p *Parser) splitFrontMatter(text string) (body string, entries []frontMatterEntry, lines, bytes int, err error) {
	if !p.frontMatter || !strings.HasPrefix(text, "---\n") {
		return text, nil, 0, 0, nil
	}
	raw := strings.SplitAfter(text, "\n")
	end := -1
	for i := 1; i < len(raw); i++ {
		if raw[i] == "---\n" || raw[i] == "---" {
			end = i
			break
		}
	}
	if end < 0 {
		// No closing fence: the opening "---" is ordinary content.
		return text, nil, 0, 0, nil
	}
	block := strings.Join(raw[1:end], "")
	body = strings.Join(raw[end+1:], "")
	lines = end + 1
	bytes = len(text) - len(body)

	entries, err = parseFrontMatter(block)
	return body, entries, lines, bytes, err
}

// yamlErrorLine digs the block-relative line number out of a yaml parse
// error, which only exposes its position as "yaml: line N: ..." text.
// Returns 0 when no line is present.
func yamlErrorLine(err error) int {
	msg := err.Error()
	i := strings.Index(msg, "line ")
	if i < 0 {
		return 0
	}
	n, found := 0, false
	for _, r := range msg[i+len("line "):] {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		found = true
	}
	if !found {
		return 0
	}
	return n
}

func parseFrontMatter(block string) ([]frontMatterEntry, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(block), &node); err != nil {
		line := yamlErrorLine(err)
		if line == 0 {
			line = 1
		}
		// The block starts on document line 2, after the opening fence.
		return nil, &SyntaxError{Line: line + 1, Column: 1, Msg: "invalid front matter: " + err.Error()}
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &SyntaxError{
			Line:   root.Line + 1,
			Column: root.Column,
			Msg:    "front matter must be a key/value mapping",
		}
	}
	var entries []frontMatterEntry
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		switch v.Kind {
		case yaml.ScalarNode:
			entries = append(entries, frontMatterEntry{key: k.Value, value: v.Value})
		case yaml.SequenceNode:
			parts := make([]string, 0, len(v.Content))
			for _, item := range v.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, &SyntaxError{
						Line:   item.Line + 1,
						Column: item.Column,
						Msg:    "front matter lists may only hold scalars",
					}
				}
				parts = append(parts, item.Value)
			}
			entries = append(entries, frontMatterEntry{key: k.Value, value: strings.Join(parts, ", ")})
		default:
			return nil, &SyntaxError{
				Line:   v.Line + 1,
				Column: v.Column,
				Msg:    "front matter value for " + k.Value + " must be a scalar or list",
			}
		}
	}
	return entries, nil
}
