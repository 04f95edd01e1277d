package sharpgen

import "strings"

// Formatter cosmetically reformats already valid source text. The input
// is lexically valid but raggedly indented; the output must carry the
// identical token stream, re-indented and brace-normalized.
type Formatter interface {
	Format(source string) (string, error)
}

// BraceFormatter re-indents source text by brace depth. It trims each
// line, indents it one level per unclosed brace, collapses runs of
// blank lines to a single blank line and guarantees a trailing newline.
//
// Brace counting is lexical; it does not track string literals. That is
// sufficient for rendered declarations, which never place braces inside
// quoted text.
type BraceFormatter struct {
	// Indent is the string written once per nesting level.
	// Defaults to four spaces.
	Indent string
}

// NewBraceFormatter creates a BraceFormatter with the default indent.
func NewBraceFormatter() *BraceFormatter {
	return &BraceFormatter{Indent: "    "}
}

// Format implements Formatter.
func (f *BraceFormatter) Format(source string) (string, error) {
	indent := f.Indent
	if indent == "" {
		indent = "    "
	}

	var out []string
	depth := 0
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			// Collapse blank runs; never start the output with a blank.
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}

		level := depth
		if strings.HasPrefix(trimmed, "}") && level > 0 {
			level--
		}
		out = append(out, strings.Repeat(indent, level)+trimmed)

		depth += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
		if depth < 0 {
			depth = 0
		}
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n") + "\n", nil
}
