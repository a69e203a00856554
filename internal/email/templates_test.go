package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManagerRendersBuiltins(t *testing.T) {
	tm := NewTemplateManager()

	for _, name := range []string{TemplateActivation, TemplatePasswordReset} {
		out, err := tm.Render(name, TemplateData{"Link": "http://localhost/x/y"})
		require.NoError(t, err, "template %s", name)
		assert.Contains(t, out, "http://localhost/x/y")
	}
}

func TestTemplateManagerUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("nope", TemplateData{})
	assert.Error(t, err)
}

func TestTemplateManagerAddTemplate(t *testing.T) {
	tm := NewTemplateManager()

	require.NoError(t, tm.AddTemplate("custom", "Hello {{.Name}}"))
	out, err := tm.Render("custom", TemplateData{"Name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", out)

	assert.Error(t, tm.AddTemplate("broken", "{{.Unclosed"))
}
