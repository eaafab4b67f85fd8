package theming

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	CSSVarPrimaryColor = "--primary-color"
	CSSVarAccentColor  = "--accent-color"
	CSSVarHeaderFont   = "--header-font"
	CSSVarBodyFont     = "--body-font"
)

// Document é o alvo onde o tema é aplicado
type Document interface {
	SetProperty(name, value string) error
	Title() string
	SetTitle(title string) error
	SetFavicon(href string) error
}

// Apply escreve as variáveis CSS, ajusta o título e o favicon. Cada passo é
// independente e falhas são apenas registradas.
func Apply(document Document, theme domain.BrandTheme) {
	if document == nil {
		return
	}

	properties := []struct {
		name  string
		value string
	}{
		{CSSVarPrimaryColor, theme.PrimaryColor},
		{CSSVarAccentColor, theme.AccentColor},
		{CSSVarHeaderFont, theme.HeaderFont},
		{CSSVarBodyFont, theme.BodyFont},
	}

	for _, property := range properties {
		if err := document.SetProperty(property.name, property.value); err != nil {
			logrus.WithError(err).WithField("property", property.name).Warn("theme: failed to apply css property")
		}
	}

	if title, changed := titleWithBrand(document.Title(), theme.BrandName); changed {
		if err := document.SetTitle(title); err != nil {
			logrus.WithError(err).Warn("theme: failed to update document title")
		}
	}

	if theme.LogoURL != "" {
		if err := document.SetFavicon(theme.LogoURL); err != nil {
			logrus.WithError(err).Warn("theme: failed to update favicon")
		}
	}
}

func titleWithBrand(title, brand string) (string, bool) {
	brand = strings.TrimSpace(brand)
	if brand == "" || strings.Contains(title, brand) {
		return title, false
	}

	if strings.TrimSpace(title) == "" {
		return brand, true
	}

	return brand + " | " + title, true
}

// StyleDocument guarda o estado aplicado em memória e o expõe como folha de estilo
type StyleDocument struct {
	mu         sync.RWMutex
	properties map[string]string
	title      string
	favicon    string
}

func NewStyleDocument(title string) *StyleDocument {
	return &StyleDocument{
		properties: make(map[string]string),
		title:      title,
	}
}

func (d *StyleDocument) SetProperty(name, value string) error {
	if !strings.HasPrefix(name, "--") {
		return fmt.Errorf("custom property %q must start with --", name)
	}
	if strings.ContainsAny(value, ";{}") {
		return fmt.Errorf("value for %s contains forbidden characters", name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.properties[name] = value
	return nil
}

func (d *StyleDocument) Property(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	value, ok := d.properties[name]
	return value, ok
}

func (d *StyleDocument) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.title
}

func (d *StyleDocument) SetTitle(title string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.title = title
	return nil
}

func (d *StyleDocument) Favicon() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.favicon
}

func (d *StyleDocument) SetFavicon(href string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.favicon = href
	return nil
}

// CSS renderiza as propriedades aplicadas como um bloco :root
func (d *StyleDocument) CSS() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.properties))
	for name := range d.properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		value := d.properties[name]
		if name == CSSVarHeaderFont || name == CSSVarBodyFont {
			value = fmt.Sprintf("%q, sans-serif", value)
		}
		fmt.Fprintf(&b, "  %s: %s;\n", name, value)
	}
	b.WriteString("}\n")

	return b.String()
}
