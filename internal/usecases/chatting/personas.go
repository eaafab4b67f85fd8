package chatting

import (
	"strings"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
)

// Todas as personas usam o mesmo endpoint; só mudam o nome enviado como agente
var personas = []domain.Persona{
	{Slug: "catalyst", Name: "Catalyst", Agent: "catalyst", Focus: "campaign strategy"},
	{Slug: "structura", Name: "Structura", Agent: "structura", Focus: "content planning"},
	{Slug: "icona", Name: "Icona", Agent: "icona", Focus: "brand identity"},
	{Slug: "prospero", Name: "Prospero", Agent: "prospero", Focus: "lead prospecting"},
	{Slug: "automatix", Name: "Automatix", Agent: "automatix", Focus: "workflow automation"},
	{Slug: "scriptor", Name: "Scriptor", Agent: "scriptor", Focus: "copywriting"},
	{Slug: "metrika", Name: "Metrika", Agent: "metrika", Focus: "analytics"},
	{Slug: "connecta", Name: "Connecta", Agent: "connecta", Focus: "integrations"},
}

func Personas() []domain.Persona {
	out := make([]domain.Persona, len(personas))
	copy(out, personas)
	return out
}

// LookupPersona aceita o slug ou o nome, sem diferenciar maiúsculas
func LookupPersona(name string) (domain.Persona, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range personas {
		if p.Slug == key || strings.ToLower(p.Name) == key {
			return p, true
		}
	}
	return domain.Persona{}, false
}
