package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"eventmanager/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// notice is one renderable email: a subject line plus html and text bodies.
type notice struct {
	subject *texttemplate.Template
	html    *template.Template
	text    *texttemplate.Template
	// accepts reports whether data has the shape the templates were written for.
	accepts func(data any) bool
}

// notices lists every email the service sends, keyed by template base name.
var notices = map[string]func(data any) bool{
	"event_full": func(data any) bool {
		d, ok := data.(*domain.EventFullEmailData)
		return ok && d != nil
	},
}

type templateRenderer struct {
	notices map[string]*notice
}

// NewTemplateRenderer parses the embedded notice templates. It panics if one of them is
// missing or malformed, since they are compiled into the binary.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	r := &templateRenderer{notices: make(map[string]*notice, len(notices))}
	for name, accepts := range notices {
		r.notices[name] = &notice{
			subject: texttemplate.Must(parseText(name + "_subject.txt")),
			html:    template.Must(template.New(name + ".html").Option("missingkey=error").ParseFS(templateFS, "templates/"+name+".html")),
			text:    texttemplate.Must(parseText(name + ".txt")),
			accepts: accepts,
		}
	}
	return r
}

func parseText(file string) (*texttemplate.Template, error) {
	return texttemplate.New(file).Option("missingkey=error").ParseFS(templateFS, "templates/"+file)
}

// Render executes the named notice with data. The subject is folded onto a single line.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	n, ok := r.notices[templateName]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", templateName)
	}
	if !n.accepts(data) {
		return "", "", "", fmt.Errorf("email template %q: unexpected data %T", templateName, data)
	}

	var buf bytes.Buffer
	if err := n.subject.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.Join(strings.Fields(buf.String()), " ")
	if subject == "" {
		return "", "", "", fmt.Errorf("email template %q: empty subject", templateName)
	}

	buf.Reset()
	if err := n.html.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := n.text.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
