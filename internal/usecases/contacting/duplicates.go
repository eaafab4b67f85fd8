package contacting

import (
	"sort"
	"strings"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
)

const (
	ReasonEmail  = "email"
	ReasonName   = "name"
	ReasonDomain = "domain"
)

// similaridade exibida para cada critério; não é calculada por par
var similarityByReason = map[string]int{
	ReasonEmail:  95,
	ReasonName:   85,
	ReasonDomain: 70,
}

var freeMailDomains = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
	"yahoo.com":      {},
	"yahoo.com.br":   {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"live.com":       {},
	"msn.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"aol.com":        {},
	"proton.me":      {},
	"protonmail.com": {},
	"uol.com.br":     {},
	"bol.com.br":     {},
}

type duplicateRule struct {
	reason string
	key    func(c domain.Contact) string
}

var duplicateRules = []duplicateRule{
	{reason: ReasonEmail, key: func(c domain.Contact) string { return normalizeEmail(c.Email) }},
	{reason: ReasonName, key: func(c domain.Contact) string { return normalizeName(c.FullName()) }},
	{reason: ReasonDomain, key: func(c domain.Contact) string { return businessDomain(c.Email) }},
}

// FindDuplicateGroups agrupa contatos por igualdade exata de campos normalizados.
// Grupos com exatamente os mesmos membros são reportados uma única vez, pelo critério mais forte.
func FindDuplicateGroups(contacts []domain.Contact) []domain.DuplicateGroup {
	groups := make([]domain.DuplicateGroup, 0)
	reported := make(map[string]struct{})

	for _, rule := range duplicateRules {
		buckets := make(map[string][]int)
		order := make([]string, 0)

		for i, contact := range contacts {
			key := rule.key(contact)
			if key == "" {
				continue
			}
			if _, ok := buckets[key]; !ok {
				order = append(order, key)
			}
			buckets[key] = append(buckets[key], i)
		}

		for _, key := range order {
			members := buckets[key]
			if len(members) < 2 {
				continue
			}

			signature := memberSignature(contacts, members)
			if _, ok := reported[signature]; ok {
				continue
			}
			reported[signature] = struct{}{}

			group := domain.DuplicateGroup{
				Reason:     rule.reason,
				MatchValue: key,
				Similarity: similarityByReason[rule.reason],
				Contacts:   make([]domain.Contact, 0, len(members)),
			}
			for _, index := range members {
				group.Contacts = append(group.Contacts, contacts[index])
			}

			groups = append(groups, group)
		}
	}

	return groups
}

func memberSignature(contacts []domain.Contact, members []int) string {
	ids := make([]string, 0, len(members))
	for _, index := range members {
		ids = append(ids, contacts[index].ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, "\x00")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func businessDomain(email string) string {
	email = normalizeEmail(email)

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}

	domainPart := email[at+1:]
	if _, free := freeMailDomains[domainPart]; free {
		return ""
	}

	return domainPart
}
