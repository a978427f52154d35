package display

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/standardbeagle/namesake/internal/types"
)

// NameFormatter formats analyzed names for display
type NameFormatter struct {
	options FormatterOptions
}

// FormatterOptions controls name formatting
type FormatterOptions struct {
	Format    string // "text", "json", "compact"
	ShowSpans bool   // List the symbols covering each part
	Indent    string // Indentation string
}

// NewNameFormatter creates a new name formatter
func NewNameFormatter(options FormatterOptions) *NameFormatter {
	if options.Indent == "" {
		options.Indent = "  "
	}
	return &NameFormatter{options: options}
}

// Format formats one analyzed name
func (nf *NameFormatter) Format(name *types.Name) string {
	if name == nil {
		return "No name data available"
	}

	switch nf.options.Format {
	case "json":
		return nf.formatJSON(name)
	case "compact":
		return nf.formatCompact(name)
	default:
		return nf.formatText(name)
	}
}

// formatText formats a name as a tree of parts and their symbols
func (nf *NameFormatter) formatText(name *types.Name) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("→ %s (%s, %d parts, %d spans)\n", name.Form, name.Tag, len(name.Parts), len(name.Spans)))

	for i, part := range name.Parts {
		isLast := i == len(name.Parts)-1
		branch, childPrefix := "├─→ ", "│ "
		if isLast {
			branch, childPrefix = "└─→ ", "  "
		}

		sb.WriteString(nf.options.Indent)
		sb.WriteString(branch)
		sb.WriteString(fmt.Sprintf("%s [%d %s]\n", part.Form, part.Index, part.Tag))

		if !nf.options.ShowSpans {
			continue
		}
		spans := name.SpansFor(part)
		for j, span := range spans {
			spanBranch := "├─ "
			if j == len(spans)-1 {
				spanBranch = "└─ "
			}
			sb.WriteString(nf.options.Indent)
			sb.WriteString(childPrefix)
			sb.WriteString(nf.options.Indent)
			sb.WriteString(spanBranch)
			sb.WriteString(span.Symbol.String())
			if len(span.Parts) > 1 {
				sb.WriteString(fmt.Sprintf(" <%s>", span.Comparable()))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// formatCompact formats a name on a single line: every part followed by the
// ids of the symbols covering it
func (nf *NameFormatter) formatCompact(name *types.Name) string {
	parts := make([]string, 0, len(name.Parts))
	for _, part := range name.Parts {
		var syms []string
		for _, span := range name.SpansFor(part) {
			syms = append(syms, span.Symbol.Category.String()+":"+span.Symbol.ID)
		}
		if len(syms) == 0 {
			parts = append(parts, part.Form)
			continue
		}
		parts = append(parts, part.Form+"{"+strings.Join(syms, ",")+"}")
	}
	return strings.Join(parts, " ")
}

type jsonPart struct {
	Form  string `json:"form"`
	Index int    `json:"index"`
	Tag   string `json:"tag"`
}

type jsonSpan struct {
	Category string   `json:"category"`
	ID       string   `json:"id"`
	Parts    []string `json:"parts"`
}

type jsonName struct {
	Original string     `json:"original"`
	Form     string     `json:"form"`
	Tag      string     `json:"tag"`
	Parts    []jsonPart `json:"parts"`
	Spans    []jsonSpan `json:"spans,omitempty"`
}

// formatJSON formats a name as an indented JSON document
func (nf *NameFormatter) formatJSON(name *types.Name) string {
	doc := jsonName{
		Original: name.Original,
		Form:     name.Form,
		Tag:      name.Tag.String(),
		Parts:    make([]jsonPart, len(name.Parts)),
	}
	for i, p := range name.Parts {
		doc.Parts[i] = jsonPart{Form: p.Form, Index: p.Index, Tag: p.Tag.String()}
	}
	if nf.options.ShowSpans {
		for _, s := range name.Spans {
			doc.Spans = append(doc.Spans, jsonSpan{
				Category: s.Symbol.Category.String(),
				ID:       s.Symbol.ID,
				Parts:    strings.Fields(s.Comparable()),
			})
		}
	}

	data, err := json.MarshalIndent(doc, "", nf.options.Indent)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
