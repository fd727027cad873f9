// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.

package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	m := DefaultMatcher()
	tests := []struct {
		input string
		want  Intent
	}{
		{"what are your store hours", IntentStoreHours},
		{"opening hours?", IntentStoreHours},
		{"any special offers today", IntentSpecialOffers},
		{"are there sales", IntentSpecialOffers},
		{"what's your address", IntentStoreLocation},
		{"where is the store located", IntentStoreLocation},
		{"check availability of rice", IntentProductAvailability},
		{"thanks a lot", IntentThanks},
		{"thank you", IntentThanks},
		{"i have to leave", IntentGoodbye},
		{"can i call the pharmacy", IntentContactInfo},
		{"phone", IntentContactInfo},
		// Earlier rules win when several match.
		{"thanks, bye", IntentThanks},
		{"store hours and phone number", IntentStoreHours},
		{"call me, bye", IntentGoodbye},
	}
	for _, tt := range tests {
		got, ok := m.Match(tt.input)
		assert.True(t, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

// Patterns need whole words, and matching is case-sensitive on the already
// lowercased input.
func TestMatch_NoMatch(t *testing.T) {
	m := DefaultMatcher()
	for _, input := range []string{"bread, milk", "", "phones", "salesman", "stopwatch", "STORE HOURS"} {
		got, ok := m.Match(input)
		assert.False(t, ok, input)
		assert.Equal(t, IntentNone, got)
	}
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "store_hours", IntentStoreHours.String())
	assert.Equal(t, "contact_info", IntentContactInfo.String())
	assert.Equal(t, "none", IntentNone.String())
	assert.Equal(t, "unknown", Intent(99).String())
}
