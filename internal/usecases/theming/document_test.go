package theming

import (
	"errors"
	"testing"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
)

type brokenDocument struct {
	*StyleDocument
}

func (brokenDocument) SetFavicon(string) error { return errors.New("no <link rel=icon>") }

func TestApply_FailuresAreNotFatal(t *testing.T) {
	document := brokenDocument{NewStyleDocument("")}
	theme := domain.DefaultBrandTheme()
	theme.LogoURL = "https://cdn.example.com/logo.svg"

	assert.NotPanics(t, func() { Apply(document, theme) })

	primary, ok := document.Property(CSSVarPrimaryColor)
	assert.True(t, ok)
	assert.Equal(t, domain.DefaultPrimaryColor, primary)
	assert.Equal(t, domain.DefaultBrandName, document.Title())
}

func TestTitleWithBrand(t *testing.T) {
	title, changed := titleWithBrand("Campaigns", "Acme")
	assert.True(t, changed)
	assert.Equal(t, "Acme | Campaigns", title)

	title, changed = titleWithBrand("Acme | Campaigns", "Acme")
	assert.False(t, changed)
	assert.Equal(t, "Acme | Campaigns", title)

	title, changed = titleWithBrand("", "Acme")
	assert.True(t, changed)
	assert.Equal(t, "Acme", title)
}

func TestStyleDocument_CSS(t *testing.T) {
	document := NewStyleDocument("")
	Apply(document, domain.DefaultBrandTheme())

	expected := ":root {\n" +
		"  --accent-color: #FFC300;\n" +
		"  --body-font: \"Open Sans\", sans-serif;\n" +
		"  --header-font: \"Montserrat\", sans-serif;\n" +
		"  --primary-color: #1F4287;\n" +
		"}\n"

	assert.Equal(t, expected, document.CSS())
	assert.Error(t, document.SetProperty("color", "red"))
}
