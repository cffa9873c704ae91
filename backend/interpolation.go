package codegen

import (
	"regexp"
	"strings"
)

var instanceVarRegex = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)`)

// genInterpolatedString turns `text #{expr} text` into a template literal.
// Every `#{...}` span becomes one `${...}` slot, in order, with its
// instance variables resolved like any other read.
func genInterpolatedString(raw string, sc *scope) string {
	var sb strings.Builder
	sb.WriteByte('`')

	rest := raw
	for {
		start := strings.Index(rest, "#{")
		if start < 0 {
			break
		}
		end := matchingBrace(rest, start+2)
		if end < 0 {
			break
		}
		if strings.TrimSpace(rest[start+2:end]) == "" {
			// an empty span stays literal text
			sb.WriteString(escapeTemplateText(rest[:end+1]))
			rest = rest[end+1:]
			continue
		}
		sb.WriteString(escapeTemplateText(rest[:start]))
		sb.WriteString("${")
		sb.WriteString(rewriteInstanceVars(strings.TrimSpace(rest[start+2:end]), sc))
		sb.WriteByte('}')
		rest = rest[end+1:]
	}
	sb.WriteString(escapeTemplateText(rest))

	sb.WriteByte('`')
	return sb.String()
}

// matchingBrace returns the index of the `}` closing a span whose body
// starts at from, or -1.
func matchingBrace(s string, from int) int {
	depth := 1
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

var templateEscaper = strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")

func escapeTemplateText(s string) string {
	return templateEscaper.Replace(s)
}

func rewriteInstanceVars(expr string, sc *scope) string {
	return instanceVarRegex.ReplaceAllStringFunc(expr, func(m string) string {
		return instanceVar(m[1:], sc)
	})
}

// stripSigils drops the `@` from instance variables in a render
// interpolation.
func stripSigils(expr string) string {
	return instanceVarRegex.ReplaceAllString(expr, "$1")
}
