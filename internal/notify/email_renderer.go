package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// HTMLDigestRenderer renders the digest as an HTML email with a plain text
// fallback.
type HTMLDigestRenderer struct {
	tmpl *template.Template
}

// NewHTMLDigestRenderer creates a renderer with the default digest template.
func NewHTMLDigestRenderer() *HTMLDigestRenderer {
	t := template.Must(template.New("digest").Parse(digestHTMLTemplate))
	return &HTMLDigestRenderer{tmpl: t}
}

// Render produces the digest message with an HTML body and plain text
// alternative.
func (r *HTMLDigestRenderer) Render(data DigestData) (*RenderedMessage, error) {
	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: data.Subject(),
		Text:    renderPlainText(data),
		HTML:    htmlBuf.String(),
	}, nil
}

// renderPlainText produces a readable version for email clients that don't
// support HTML.
func renderPlainText(data DigestData) string {
	var sb strings.Builder

	sb.WriteString("Daily Defense Tech Brief\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(data.Articles) > 0 {
		sb.WriteString("NEWS ARTICLES\n")
		sb.WriteString(strings.Repeat("-", 20) + "\n")
		for _, a := range data.Articles {
			sb.WriteString(fmt.Sprintf("[%d/10] %s\n", a.CompositeScore, a.Title))
			sb.WriteString(fmt.Sprintf("%s - %s\n", a.Category, a.Source))
			sb.WriteString(fmt.Sprintf("%s\n", a.Summary))
			sb.WriteString(fmt.Sprintf("%s\n\n", a.Link))
		}
	}

	if len(data.Opportunities) > 0 {
		sb.WriteString("CONTRACT OPPORTUNITIES (SAM.gov)\n")
		sb.WriteString(strings.Repeat("-", 20) + "\n")
		for _, o := range data.Opportunities {
			sb.WriteString(fmt.Sprintf("[%d/10] %s\n", o.CompositeScore, o.Title))
			sb.WriteString(fmt.Sprintf("Solicitation: %s | NAICS: %s | Type: %s\n",
				o.SolicitationNumber, o.NAICSCode, o.Type))
			sb.WriteString(fmt.Sprintf("Response deadline: %s\n", o.ResponseDeadline))
			sb.WriteString(fmt.Sprintf("%s\n", o.Summary))
			sb.WriteString(fmt.Sprintf("%s\n\n", o.Link))
		}
	}

	return sb.String()
}
