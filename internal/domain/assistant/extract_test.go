package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractNumbered(t *testing.T) {
	require.Equal(t, []string{"Visit the park", "Try local food"}, ExtractNumbered("1. Visit the park\n2. Try local food"))
}

func TestExtractNumberedKeepsWrappedLines(t *testing.T) {
	reply := "Here are some ideas:\n\n1. Louvre visit\n   Rainy days suit museums.\n2. Seine cruise\n10. Café crawl\n"
	require.Equal(t, []string{
		"Louvre visit\n   Rainy days suit museums.",
		"Seine cruise",
		"Café crawl",
	}, ExtractNumbered(reply))
}

func TestExtractNumberedNoList(t *testing.T) {
	require.Empty(t, ExtractNumbered("Sorry, I can only talk about the weather."))
	require.Empty(t, ExtractNumbered(""))
	require.Empty(t, ExtractNumbered("1."))
	require.Empty(t, ExtractNumbered("1.   "))
}

func TestExtractNumberedInlineNumbers(t *testing.T) {
	// Only a newline followed by a number ends an item.
	require.Equal(t, []string{"Walk 2. blocks to the pier", "Eat"}, ExtractNumbered("1. Walk 2. blocks to the pier\n2. Eat"))
}
