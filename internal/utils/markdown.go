package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown converte o corpo em markdown de um post para texto puro
func StripMarkdown(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var sb strings.Builder
	doc := markdown.Parse([]byte(text), nil)
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.HTMLBlock, *ast.HTMLSpan:
			return ast.SkipChildren
		case *ast.Text:
			if entering {
				sb.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				sb.Write(n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				sb.Write(n.Literal)
				sb.WriteString("\n")
			}
		case *ast.Softbreak:
			if entering {
				sb.WriteString(" ")
			}
		case *ast.Hardbreak:
			if entering {
				sb.WriteString("\n")
			}
		case *ast.ListItem:
			if entering {
				sb.WriteString("- ")
			} else {
				sb.WriteString("\n")
			}
		case *ast.Paragraph:
			if !entering {
				if _, inList := n.Parent.(*ast.ListItem); !inList {
					sb.WriteString("\n\n")
				}
			}
		case *ast.Heading:
			if !entering {
				sb.WriteString("\n\n")
			}
		}
		return ast.GoToNext
	})

	return strings.TrimSpace(sb.String())
}

// Excerpt gera um resumo em texto puro com no máximo maxRunes caracteres,
// cortando na última palavra inteira
func Excerpt(body string, maxRunes int) string {
	plain := strings.Join(strings.Fields(StripMarkdown(body)), " ")
	if maxRunes <= 0 || utf8.RuneCountInString(plain) <= maxRunes {
		return plain
	}

	runes := []rune(plain)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
