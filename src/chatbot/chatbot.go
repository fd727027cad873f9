// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// chatbot.go - The supermarket bot. Classifies each line as an exit command,
// a known question, or a comma-separated list of items to locate.

package chatbot

import (
	"fmt"
	"strings"

	"github.com/christimahu/dev/supermarket-bot/src/catalog"
	"github.com/christimahu/dev/supermarket-bot/src/config"
)

// Locator resolves an item to its place in the store.
type Locator interface {
	Locate(item string) catalog.Location
}

// TurnKind says how a line of input was interpreted.
type TurnKind int

const (
	TurnExit TurnKind = iota
	TurnIntent
	TurnItems
)

// Turn is the bot's answer to one line of input.
type Turn struct {
	Kind   TurnKind
	Intent Intent
	Lines  []string
	// Found lists the items located in the catalog, in input order.
	Found []string
	Exit  bool
}

// Bot holds the immutable tables a conversation is answered from.
type Bot struct {
	Name      string
	Prompt    string
	greetings []string
	exits     map[string]struct{}
	matcher   *Matcher
	resolver  *Resolver
	locator   Locator
}

// NewBot returns a Bot answering from cfg's tables and locating items in loc.
func NewBot(cfg *config.Config, loc Locator) *Bot {
	exits := make(map[string]struct{}, len(cfg.Bot.ExitCommands))
	for _, cmd := range cfg.Bot.ExitCommands {
		exits[strings.ToLower(cmd)] = struct{}{}
	}
	greetings := make([]string, len(cfg.Bot.Greetings))
	copy(greetings, cfg.Bot.Greetings)

	return &Bot{
		Name:      cfg.Bot.Name,
		Prompt:    cfg.Bot.Prompt,
		greetings: greetings,
		exits:     exits,
		matcher:   DefaultMatcher(),
		resolver:  NewResolver(cfg.Responses, cfg.Contacts),
		locator:   loc,
	}
}

// Greeting returns the greeting at index pick(n), where n is the number of
// greetings.
func (b *Bot) Greeting(pick func(n int) int) string {
	return b.greetings[pick(len(b.greetings))]
}

// IsExit reports whether the whole line is an exit command. Substrings do
// not count: "stop by the bakery" is not an exit.
func (b *Bot) IsExit(line string) bool {
	_, ok := b.exits[strings.ToLower(line)]
	return ok
}

// Respond interprets one line of input.
func (b *Bot) Respond(input string) Turn {
	line := strings.ToLower(input)

	if b.IsExit(line) {
		return Turn{Kind: TurnExit, Intent: IntentGoodbye, Lines: []string{b.resolver.Goodbye()}, Exit: true}
	}

	if intent, ok := b.matcher.Match(line); ok {
		reply := b.resolver.Resolve(intent, line)
		return Turn{Kind: TurnIntent, Intent: intent, Lines: []string{reply.Text}, Exit: reply.Exit}
	}

	turn := Turn{Kind: TurnItems}
	for _, token := range strings.Split(line, ",") {
		item := strings.TrimSpace(token)
		loc := b.locator.Locate(item)
		if !loc.Found {
			turn.Lines = append(turn.Lines, loc.String())
			continue
		}
		turn.Lines = append(turn.Lines,
			fmt.Sprintf("Sure, let me find that for you. The %s is located at %s.", loc.Item, loc.Place))
		turn.Found = append(turn.Found, loc.Item)
	}
	return turn
}
