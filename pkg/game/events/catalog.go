// Package events defines the fixed catalog of life events revealed behind each
// door, and the weighted table the survival cost of a move is drawn from.
package events

import (
	"github.com/leonelquinteros/gotext"
)

// Category is the life area an event belongs to.
type Category int

const (
	Career Category = iota
	Relationships
	HealthLifestyle
	Finance
	PersonalGrowth
)

// String returns the display name of a category
func (c Category) String() string {
	switch c {
	case Career:
		return gotext.Get("Career")
	case Relationships:
		return gotext.Get("Relationships")
	case HealthLifestyle:
		return gotext.Get("Health & Lifestyle")
	case Finance:
		return gotext.Get("Finance")
	case PersonalGrowth:
		return gotext.Get("Personal growth")
	default:
		return gotext.Get("Unknown")
	}
}

// LifeEvent is one card from the catalog.
type LifeEvent struct {
	Description string
	Value       int
	Category    Category
}

// dynamicGet looks up catalog descriptions, which are not constant format strings.
var dynamicGet = gotext.Get

// Text returns the translated description
func (e LifeEvent) Text() string {
	if e.Description == "" {
		return ""
	}
	return dynamicGet(e.Description)
}

// catalog is read-only; callers get copies through Catalog and Draw.
var catalog = []LifeEvent{
	{"You get promoted to team lead at work.", 10, Career},
	{"Your project fails, and you must start over.", -6, Career},
	{"You get invited to a prestigious industry conference.", 8, Career},
	{"You get laid off unexpectedly.", -10, Career},

	{"You make a new close friend.", 7, Relationships},
	{"A friendship ends after a disagreement.", -5, Relationships},
	{"You start dating someone special.", 9, Relationships},
	{"You go through a painful breakup.", -8, Relationships},

	{"You start a fitness routine and feel energized.", 6, HealthLifestyle},
	{"You catch a minor illness that slows you down.", -3, HealthLifestyle},
	{"You complete a marathon or big physical challenge.", 8, HealthLifestyle},
	{"You suffer a small injury and need rest.", -4, HealthLifestyle},

	{"You save a significant amount for future goals.", 7, Finance},
	{"Unexpected expenses deplete your savings.", -6, Finance},
	{"You make a successful investment.", 9, Finance},
	{"You lose money in a failed investment.", -9, Finance},

	{"You travel to a country you’ve always wanted to visit.", 8, PersonalGrowth},
	{"You learn a new skill that opens opportunities.", 7, PersonalGrowth},
	{"You experience a stressful challenge that shakes your confidence.", -5, PersonalGrowth},
	{"You reconnect with someone from your past, bringing joy.", 6, PersonalGrowth},
}

// survivalLosses lists each possible loss once per unit of weight:
// 1 (5/13), 2 (3/13), 3 (2/13), 4 (2/13), 7 (1/13).
var survivalLosses = []int{1, 1, 1, 1, 1, 2, 2, 2, 3, 3, 4, 4, 7}

// Rand is the source of randomness for draws. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Size returns the number of events in the catalog
func Size() int {
	return len(catalog)
}

// Catalog returns a copy of the full catalog
func Catalog() []LifeEvent {
	ret := make([]LifeEvent, len(catalog))
	copy(ret, catalog)
	return ret
}

// Draw picks an event uniformly at random
func Draw(rng Rand) LifeEvent {
	return catalog[rng.Intn(len(catalog))]
}

// DrawSurvivalLoss picks the survival cost of a move from the weighted table
func DrawSurvivalLoss(rng Rand) int {
	return survivalLosses[rng.Intn(len(survivalLosses))]
}

// SurvivalLossWeights returns the weight of each possible loss out of
// the table size, e.g. 1 -> 5 of 13.
func SurvivalLossWeights() (weights map[int]int, total int) {
	weights = make(map[int]int)
	for _, l := range survivalLosses {
		weights[l]++
	}
	return weights, len(survivalLosses)
}
