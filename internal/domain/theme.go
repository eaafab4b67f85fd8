package domain

import "time"

// BrandTheme é a configuração visual da marca, singleton por perfil de armazenamento
type BrandTheme struct {
	PrimaryColor string    `json:"primary_color" mapstructure:"primary_color"`
	AccentColor  string    `json:"accent_color" mapstructure:"accent_color"`
	HeaderFont   string    `json:"header_font" mapstructure:"header_font"`
	BodyFont     string    `json:"body_font" mapstructure:"body_font"`
	BrandName    string    `json:"brand_name" mapstructure:"brand_name"`
	LogoURL      string    `json:"logo_url" mapstructure:"logo_url"`
	UpdatedAt    time.Time `json:"updated_at" mapstructure:"-"`
}

const (
	DefaultPrimaryColor = "#1F4287"
	DefaultAccentColor  = "#FFC300"
	DefaultHeaderFont   = "Montserrat"
	DefaultBodyFont     = "Open Sans"
	DefaultBrandName    = "DigiSol.AI"
)

func DefaultBrandTheme() BrandTheme {
	return BrandTheme{
		PrimaryColor: DefaultPrimaryColor,
		AccentColor:  DefaultAccentColor,
		HeaderFont:   DefaultHeaderFont,
		BodyFont:     DefaultBodyFont,
		BrandName:    DefaultBrandName,
	}
}

// ThemeUpdatedEvent é o nome do evento entregue aos assinantes a cada alteração
const ThemeUpdatedEvent = "brandThemeUpdated"

type ThemeEvent struct {
	Name  string     `json:"name"`
	Theme BrandTheme `json:"theme"`
}
