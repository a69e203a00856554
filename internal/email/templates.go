package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Names of the built-in templates.
const (
	TemplateActivation    = "activation"
	TemplatePasswordReset = "password_reset"
)

// The emailed link always ends in /{uid}/{token} so clients can recover
// both values by splitting the URL on "/".
const defaultActivationTemplate = `<p>Hi{{if .Name}} {{.Name}}{{end}},</p>
<p>Please confirm your email address to activate your account:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>If you did not register, you can ignore this message.</p>`

const defaultPasswordResetTemplate = `<p>Hi{{if .Name}} {{.Name}}{{end}},</p>
<p>A password reset was requested for your account. Follow the link below to choose a new password:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>This link expires in one hour. If you did not request a reset, you can ignore this message.</p>`

// TemplateManager is a threadsafe registry of parsed mail templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in
// activation and password-reset templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	// Built-in templates are known-good, errors here cannot happen.
	_ = tm.AddTemplate(TemplateActivation, defaultActivationTemplate)
	_ = tm.AddTemplate(TemplatePasswordReset, defaultPasswordResetTemplate)
	return tm
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate registers or replaces a template.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
