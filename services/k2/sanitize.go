package k2

import (
	"regexp"
	"strings"

	"k2demo/models"
)

// Best-effort scrubbing of personalization language for identity-gated offers
// that ship without an authored fallback UI. Every use of this path is an
// authoring defect and gets logged as a guardrail violation; the patterns only
// need to cover phrasings that actually appear in the scenario table.
var (
	giftPhrasePattern = regexp.MustCompile(`(?i)(\+?\s*free\s+(book\s+)?gift[^+,;.]*|\bpersonali[sz]ed\b[^+,;.]*|\(next in your series\)|based on your (purchase|reading) history[^+,;.]*|هدية[^+،;.]*|مخصص[^+،;.]*)`)
	giftBadgePattern  = regexp.MustCompile(`(?i)(gift|personali[sz]ed|for you|هدية|مخصص)`)
)

func stripGiftLanguage(s string) string {
	out := giftPhrasePattern.ReplaceAllString(s, "")
	out = strings.Join(strings.Fields(out), " ")
	return strings.Trim(out, " +,;-")
}

// sanitizeUI removes gift/personalization wording from an offer UI so it can
// be shown to a shopper whose identity is absent.
func sanitizeUI(ui models.OfferUI) models.OfferUI {
	out := models.OfferUI{
		Title:    stripGiftLanguage(ui.Title),
		Subtitle: stripGiftLanguage(ui.Subtitle),
	}
	for _, b := range ui.Badges {
		if giftBadgePattern.MatchString(b) {
			continue
		}
		out.Badges = append(out.Badges, b)
	}
	return out
}
