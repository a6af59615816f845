package domain

import "strings"

type topicRule struct {
	topic    Topic
	keywords []string
}

// topicRules is scanned in order; the first topic with a keyword inside the
// message wins. Tables are never mutated after initialization.
var topicRules = [...]topicRule{
	{TopicGreeting, []string{"oi", "olá", "bom dia", "boa tarde", "boa noite", "hello", "hi"}},
	{TopicFindPet, []string{"procurar", "buscar", "encontrar", "adotar", "pet", "cachorro", "gato", "animal"}},
	{TopicAdoptionQuestion, []string{"adoção", "adotar", "processo", "como", "quero", "dúvida"}},
	{TopicPetCare, []string{"cuidar", "cuidados", "alimentação", "vacina", "castração", "saúde"}},
	{TopicTechSupport, []string{"problema", "erro", "não funciona", "ajuda", "suporte", "técnico"}},
}

// Classify returns the topic of message by substring keyword matching.
// A message matching nothing falls back to TopicGreeting, the same route as
// an explicit greeting.
func Classify(message string) Topic {
	lower := strings.ToLower(message)
	for _, rule := range topicRules {
		if containsAny(lower, rule.keywords...) {
			return rule.topic
		}
	}
	return TopicGreeting
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
