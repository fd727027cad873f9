// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// resolver.go - Turns a matched intent into the bot's canned reply.

package chatbot

import (
	"fmt"
	"strings"

	"github.com/christimahu/dev/supermarket-bot/src/config"
)

// Reply is the resolved answer for an intent. Exit is set when the reply
// ends the conversation.
type Reply struct {
	Intent Intent
	Text   string
	Exit   bool
}

// Resolver maps intents to reply text.
type Resolver struct {
	fixed    map[Intent]string
	contacts []config.Contact
	fallback string
}

// NewResolver builds a Resolver from the configured reply tables.
func NewResolver(responses config.ResponsesConfig, contacts []config.Contact) *Resolver {
	cs := make([]config.Contact, len(contacts))
	copy(cs, contacts)
	return &Resolver{
		fixed: map[Intent]string{
			IntentStoreHours:          responses.StoreHours,
			IntentSpecialOffers:       responses.SpecialOffers,
			IntentStoreLocation:       responses.StoreLocation,
			IntentProductAvailability: responses.ProductAvailability,
			IntentThanks:              responses.Thanks,
			IntentGoodbye:             responses.Goodbye,
		},
		contacts: cs,
		fallback: responses.ContactFallback,
	}
}

// Resolve returns the reply for intent. raw is only consulted for
// contact_info, which looks for a department name in it.
func (r *Resolver) Resolve(intent Intent, raw string) Reply {
	if intent == IntentContactInfo {
		return Reply{Intent: intent, Text: r.contact(raw)}
	}
	return Reply{
		Intent: intent,
		Text:   r.fixed[intent],
		Exit:   intent == IntentGoodbye,
	}
}

// Goodbye is the closing line of every conversation.
func (r *Resolver) Goodbye() string {
	return r.fixed[IntentGoodbye]
}

// contact matching is a plain substring search. "phone" or "call" can match
// the intent without naming any department, which yields the fallback.
func (r *Resolver) contact(raw string) string {
	for _, c := range r.contacts {
		if strings.Contains(raw, c.Key) {
			return fmt.Sprintf("You can reach %s at %s.", c.Name, c.Phone)
		}
	}
	return r.fallback
}
