// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// intent.go - Classifies a line of input into one of the bot's fixed intents
// using an ordered table of regular expressions.

package chatbot

import "regexp"

// Intent is a classified purpose behind a line of input.
type Intent int

// The bot's fixed intents.
const (
	IntentNone Intent = iota
	IntentStoreHours
	IntentSpecialOffers
	IntentStoreLocation
	IntentProductAvailability
	IntentThanks
	IntentGoodbye
	IntentContactInfo
)

var intentNames = map[Intent]string{
	IntentNone:                "none",
	IntentStoreHours:          "store_hours",
	IntentSpecialOffers:       "special_offers",
	IntentStoreLocation:       "store_location",
	IntentProductAvailability: "product_availability",
	IntentThanks:              "thanks",
	IntentGoodbye:             "goodbye",
	IntentContactInfo:         "contact_info",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

type rule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// Matcher checks its rules in registration order; the first match wins.
type Matcher struct {
	rules []rule
}

// Order is significant: "call me, bye" is a goodbye, not a contact request.
var defaultRules = []rule{
	{IntentStoreHours, regexp.MustCompile(`\b(store hours|opening hours)\b`)},
	{IntentSpecialOffers, regexp.MustCompile(`\b(special offers|sales)\b`)},
	{IntentStoreLocation, regexp.MustCompile(`\b(location|address|store located)\b`)},
	{IntentProductAvailability, regexp.MustCompile(`\b(availability)\b`)},
	{IntentThanks, regexp.MustCompile(`\b(thank you|thanks)\b`)},
	{IntentGoodbye, regexp.MustCompile(`\b(exit|quit|bye|goodbye|leave|stop)\b`)},
	{IntentContactInfo, regexp.MustCompile(`\b(contact|phone|number|call)\b`)},
}

// DefaultMatcher returns a Matcher over the bot's seven intents.
func DefaultMatcher() *Matcher {
	return &Matcher{rules: defaultRules}
}

// Match returns the first intent whose pattern occurs anywhere in input.
// The patterns are lowercase, so callers lowercase input first.
func (m *Matcher) Match(input string) (Intent, bool) {
	for _, r := range m.rules {
		if r.pattern.MatchString(input) {
			return r.intent, true
		}
	}
	return IntentNone, false
}
