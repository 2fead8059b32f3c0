package dashboard

import (
	"html"
	"regexp"
	"strings"
)

// The reflection text is trusted-but-escaped markdown. The subset here is
// exactly what reflections use: headers, bold, code spans, dash lists, and
// paragraphs. Anything else renders as escaped text.
var (
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	inlineTag  = regexp.MustCompile(`(<(?:strong|code)>.*?</(?:strong|code)>)`)
)

// markdownToHTML converts the reflection markdown subset to HTML.
func markdownToHTML(text string) string {
	var result []string
	inList := false

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if inList && !strings.HasPrefix(stripped, "- ") {
			result = append(result, "</ul>")
			inList = false
		}

		switch {
		case strings.HasPrefix(stripped, "### "):
			result = append(result, "<h3>"+html.EscapeString(stripped[4:])+"</h3>")
		case strings.HasPrefix(stripped, "## "):
			// Headers may carry bold runs: ## 3. **Title**
			result = append(result, "<h2>"+escapeOutsideTags(boldSpans(stripped[3:]))+"</h2>")
		case strings.HasPrefix(stripped, "# "):
			result = append(result, "<h1>"+html.EscapeString(stripped[2:])+"</h1>")
		case strings.HasPrefix(stripped, "- "):
			if !inList {
				result = append(result, "<ul>")
				inList = true
			}
			result = append(result, "<li>"+inlineMarkdown(stripped[2:])+"</li>")
		case stripped == "":
			continue
		default:
			result = append(result, "<p>"+inlineMarkdown(stripped)+"</p>")
		}
	}

	if inList {
		result = append(result, "</ul>")
	}
	return strings.Join(result, "\n")
}

// inlineMarkdown converts code spans and bold runs, escaping everything else.
// Code spans go first so bold markers inside them survive literally.
func inlineMarkdown(text string) string {
	text = codeSpanRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := codeSpanRe.FindStringSubmatch(m)[1]
		return "<code>" + html.EscapeString(inner) + "</code>"
	})
	return escapeOutsideTags(boldSpans(text))
}

// boldSpans converts **bold** runs, escaping their content.
func boldSpans(text string) string {
	return boldRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := boldRe.FindStringSubmatch(m)[1]
		return "<strong>" + html.EscapeString(inner) + "</strong>"
	})
}

// escapeOutsideTags escapes every segment that is not an already-rendered
// strong or code element.
func escapeOutsideTags(text string) string {
	parts := inlineTag.Split(text, -1)
	tags := inlineTag.FindAllString(text, -1)
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(html.EscapeString(p))
		if i < len(tags) {
			b.WriteString(tags[i])
		}
	}
	return b.String()
}
