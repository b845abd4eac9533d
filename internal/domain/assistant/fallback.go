package assistant

import (
	"strings"

	"github.com/yanqian/weather-companion/internal/domain/weather"
)

type fallbackKeyword string

const (
	keywordRain  fallbackKeyword = "rain"
	keywordSnow  fallbackKeyword = "snow"
	keywordSunny fallbackKeyword = "sunny"
	keywordCloud fallbackKeyword = "cloud"
	keywordOther fallbackKeyword = "other"
)

type fallbackKey struct {
	keyword        fallbackKeyword
	nightOrEvening bool
}

const cityPlaceholder = "{city}"

// fallbackActivities is served when the model reply contains no numbered list.
var fallbackActivities = map[fallbackKey][]string{
	{keywordRain, true}: {
		"Enjoy a cozy evening at a warm café in {city} with a hot drink",
		"Visit an indoor cinema to watch a movie",
		"Explore a local bookstore and browse for interesting reads",
		"Try a traditional restaurant for a hearty dinner",
		"Visit a museum or art gallery if open in the evening",
	},
	{keywordRain, false}: {
		"Visit an indoor museum or cultural center in {city}",
		"Explore covered markets and local shops",
		"Enjoy coffee and pastries at a cozy café",
		"Visit a library or indoor cultural space",
		"Try indoor activities like bowling or arcade games",
	},
	{keywordSnow, true}: {
		"Take evening photos of snow-covered landmarks in {city}",
		"Warm up at a traditional pub or tavern",
		"Enjoy hot chocolate at a cozy winter café",
		"Visit heated indoor attractions or venues",
		"Take a romantic evening walk through snowy streets",
	},
	{keywordSnow, false}: {
		"Build a snowman in a local park in {city}",
		"Take scenic photos of the winter landscape",
		"Try winter sports if facilities are available nearby",
		"Visit warm indoor attractions like museums",
		"Enjoy hot drinks at mountain lodges or cafés",
	},
	{keywordSunny, true}: {
		"Take an evening stroll through {city}'s illuminated streets",
		"Enjoy outdoor dining at a restaurant terrace",
		"Visit rooftop bars or outdoor venues for night views",
		"Explore night markets or evening festivals",
		"Take sunset/evening photos at scenic viewpoints",
	},
	{keywordSunny, false}: {
		"Take a walking tour of {city}'s main attractions",
		"Visit outdoor parks and gardens",
		"Explore local markets and street vendors",
		"Have a picnic in a scenic location",
		"Take photos at famous landmarks and viewpoints",
	},
	{keywordCloud, true}: {
		"Explore {city}'s nightlife and entertainment districts",
		"Visit local pubs or bars for drinks and socializing",
		"Take an evening city tour to see illuminated buildings",
		"Enjoy dinner at a restaurant with local cuisine",
		"Visit cultural venues or attend evening events",
	},
	{keywordCloud, false}: {
		"Explore the historic center of {city}",
		"Visit local museums and cultural sites",
		"Walk through parks and public spaces",
		"Browse local shops and markets",
		"Try local cafés and taste regional specialties",
	},
	{keywordOther, true}: {
		"Discover {city}'s evening dining scene",
		"Take a nighttime walk through the city center",
		"Visit local bars or entertainment venues",
		"Explore illuminated landmarks and buildings",
		"Enjoy live music or cultural performances",
	},
	{keywordOther, false}: {
		"Explore the main attractions of {city}",
		"Visit local museums and cultural sites",
		"Try regional food at recommended restaurants",
		"Walk through the city's historic areas",
		"Browse local shops and markets",
	},
}

// fallbackKeywordFor buckets a description. Unlike weather.Classify, snow is
// checked before sun and cloud comes last.
func fallbackKeywordFor(description string) fallbackKeyword {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "rain") || strings.Contains(d, "shower"):
		return keywordRain
	case strings.Contains(d, "snow"):
		return keywordSnow
	case strings.Contains(d, "sun") || strings.Contains(d, "clear"):
		return keywordSunny
	case strings.Contains(d, "cloud"):
		return keywordCloud
	default:
		return keywordOther
	}
}

// FallbackActivities returns the canned list for rec and part with the city filled in.
func FallbackActivities(rec weather.Record, part weather.DayPart) []string {
	key := fallbackKey{keyword: fallbackKeywordFor(rec.Description), nightOrEvening: part.NightOrEvening()}
	templates := fallbackActivities[key]
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = strings.ReplaceAll(tmpl, cityPlaceholder, rec.City)
	}
	return out
}
