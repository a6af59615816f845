package domain

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Apurer/petadopt-api/internal/shared/locale"
)

// MaxRenderedMatches is the number of matches spelled out in a reply.
const MaxRenderedMatches = 3

// Chooser returns an index in [0, n).
type Chooser func(n int) int

// Responder renders replies. Only the generic reply depends on the chooser.
type Responder struct {
	choose Chooser
}

// NewResponder builds a responder; a nil chooser picks uniformly at random.
func NewResponder(choose Chooser) *Responder {
	if choose == nil {
		choose = rand.Intn
	}
	return &Responder{choose: choose}
}

// Respond renders the reply for topic. matches is only read for TopicFindPet.
func (r *Responder) Respond(topic Topic, matches []PetRecord, message string) string {
	switch topic {
	case TopicFindPet:
		return renderMatches(matches)
	case TopicAdoptionQuestion:
		return adoptionAnswer(strings.ToLower(message))
	case TopicPetCare:
		return careAnswer(strings.ToLower(message))
	case TopicTechSupport:
		return techSupportText
	default:
		return r.genericReply()
	}
}

func (r *Responder) genericReply() string {
	i := r.choose(len(GenericReplies))
	if i < 0 || i >= len(GenericReplies) {
		i = 0
	}
	return GenericReplies[i]
}

func renderMatches(matches []PetRecord) string {
	if len(matches) == 0 {
		return findPetFallback
	}
	if len(matches) > MaxRenderedMatches {
		matches = matches[:MaxRenderedMatches]
	}
	var b strings.Builder
	b.WriteString(findPetHeader)
	for i, pet := range matches {
		fmt.Fprintf(&b, "%d. **%s** - %s %s\n", i+1, pet.Name, pet.SpeciesLabel, pet.SizeLabel)
		fmt.Fprintf(&b, "   📍 %s/%s\n", pet.City, pet.Region)
		fmt.Fprintf(&b, "   🎂 %s\n", locale.FormatAge(pet.AgeMonths))
		if pet.OwnerVerified {
			b.WriteString(findPetVerified)
		}
		b.WriteString("\n")
	}
	b.WriteString(findPetCallToAction)
	return b.String()
}

func adoptionAnswer(lower string) string {
	switch {
	case containsAny(lower, "processo", "como"):
		return adoptionProcessText
	case containsAny(lower, "documento", "papel"):
		return adoptionDocumentsText
	case containsAny(lower, "custo", "preço", "valor"):
		return adoptionCostText
	default:
		return adoptionMenuText
	}
}

func careAnswer(lower string) string {
	switch {
	case containsAny(lower, "alimentação", "comida", "ração"):
		return careFeedingText
	case containsAny(lower, "vacina", "vacinação"):
		return careVaccinationText
	case containsAny(lower, "castração", "castrar"):
		return careNeuteringText
	default:
		return careMenuText
	}
}
