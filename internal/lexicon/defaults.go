package lexicon

import "github.com/stepvis/stepvis/internal/types"

// defaultDomains maps canonical customer-service concepts to their synonym
// sets. Expansion is symmetric: any member stands for the concept and for
// every other member.
var defaultDomains = map[string][]string{
	"payment": {
		"billing", "pay", "card", "credit", "debit", "transaction", "invoice",
	},
	"insurance": {
		"claim", "policy", "coverage", "deductible", "premium",
	},
	"order": {
		"purchase", "shipment", "shipping", "tracking", "delivery", "cart",
	},
	"account": {
		"profile", "settings", "login", "signin", "username", "membership",
	},
	"booking": {
		"reservation", "reserve", "cruise", "trip", "itinerary", "schedule",
	},
	"refund": {
		"return", "exchange", "reimbursement", "credit",
	},
	"support": {
		"help", "ticket", "issue", "assistance",
	},
	"address": {
		"street", "city", "zip", "postal", "location",
	},
}

// defaultActions lists the canonical UI actions with verb synonyms and
// hotspot affinities. Verb recognition is stem-folded, so "clicking" and
// "clicks" resolve the same as "click".
var defaultActions = []Action{
	{
		Name:     "click",
		Verbs:    []string{"press", "tap", "select", "choose", "hit"},
		Affinity: []types.HotspotType{types.HotspotButton},
	},
	{
		Name:     "enter",
		Verbs:    []string{"type", "input", "fill", "write", "provide"},
		Affinity: []types.HotspotType{types.HotspotInput},
	},
	{
		Name:     "navigate",
		Verbs:    []string{"go", "open", "access", "visit", "browse"},
		Affinity: []types.HotspotType{types.HotspotLink},
	},
	{
		Name:     "update",
		Verbs:    []string{"change", "modify", "edit", "alter"},
		Affinity: []types.HotspotType{types.HotspotInput, types.HotspotButton},
	},
	{
		Name:     "view",
		Verbs:    []string{"see", "check", "review", "look"},
		Affinity: []types.HotspotType{types.HotspotLink},
	},
	{
		Name:     "submit",
		Verbs:    []string{"save", "confirm", "apply", "send"},
		Affinity: []types.HotspotType{types.HotspotButton},
	},
	{
		Name:     "search",
		Verbs:    []string{"find", "lookup", "locate"},
		Affinity: []types.HotspotType{types.HotspotInput},
	},
}

// defaultStopWords carry no matching signal and are dropped during
// normalization.
var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by", "from", "is", "are", "was", "were",
	"my", "your", "our", "their", "can", "you", "me", "that", "this",
	"it", "its", "as", "be", "will", "would", "should", "please",
	"want", "need", "help",
}

// defaultGenericTerms are hotspot names too vague to be rewarded; a hotspot
// named exactly one of these takes the generic-name penalty.
var defaultGenericTerms = []string{
	"click", "button", "text", "field", "input", "next", "back",
	"submit", "ok", "yes", "no", "continue", "cancel", "close",
	"audio", "screen", "item", "here", "link",
}
