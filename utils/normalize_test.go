package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTextLowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "office chair", NormalizeText("  Office   CHAIR  "))
}

func TestNormalizeTextReplacesPunctuation(t *testing.T) {
	assert.Equal(t, "ps5 please", NormalizeText("PS5, please!"))
	assert.Equal(t, "back to school", NormalizeText("back-to-school"))
	assert.Equal(t, "kids art", NormalizeText("kids/art"))
}

func TestNormalizeTextStripsArabicDiacritics(t *testing.T) {
	// The same word with and without tashkeel must normalize identically.
	assert.Equal(t, NormalizeText("رواية"), NormalizeText("رِوَايَة"))
	// Tatweel is dropped.
	assert.Equal(t, NormalizeText("كتاب"), NormalizeText("كتـــاب"))
}

func TestNormalizeTextArabicPunctuation(t *testing.T) {
	assert.Equal(t, "ما هذا", NormalizeText("ما هذا؟"))
}

func TestNormalizeTextDeterministic(t *testing.T) {
	in := "الدوائر الخمس — أسامة المسلم"
	assert.Equal(t, NormalizeText(in), NormalizeText(in))
}

func TestNormalizeTextEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("  ?!،  "))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"sony", "ps5", "pro"}, Tokenize("Sony PS5-Pro"))
	assert.Empty(t, Tokenize("  "))
}
