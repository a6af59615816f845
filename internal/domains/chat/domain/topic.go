package domain

import "strings"

// Topic routes a chat message to a response strategy.
type Topic string

const (
	TopicGreeting         Topic = "greeting"
	TopicFindPet          Topic = "find_pet"
	TopicAdoptionQuestion Topic = "adoption_question"
	TopicPetCare          Topic = "pet_care"
	TopicTechSupport      Topic = "tech_support"
	TopicGeneralInfo      Topic = "general_info"
)

// Label returns the pt-BR display name.
func (t Topic) Label() string {
	switch t {
	case TopicGreeting:
		return "Saudação"
	case TopicFindPet:
		return "Busca de Pet"
	case TopicAdoptionQuestion:
		return "Dúvida sobre Adoção"
	case TopicPetCare:
		return "Cuidados com Pet"
	case TopicTechSupport:
		return "Suporte Técnico"
	default:
		return "Informação Geral"
	}
}

// NormalizeTopic maps a caller supplied hint onto the closed topic set.
// Empty or unknown hints become TopicGeneralInfo.
func NormalizeTopic(raw string) Topic {
	switch t := Topic(strings.ToLower(strings.TrimSpace(raw))); t {
	case TopicGreeting, TopicFindPet, TopicAdoptionQuestion, TopicPetCare, TopicTechSupport, TopicGeneralInfo:
		return t
	default:
		return TopicGeneralInfo
	}
}
