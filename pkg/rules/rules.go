// Package rules holds the procedural-rule and party-adjustment
// configuration consulted when computing deadlines. A Config is an
// immutable snapshot keyed by (process type, act type) and by party type;
// distinct snapshots may be loaded per tenant or jurisdiction.
package rules

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// Unit is the measure a rule's duration is counted in.
type Unit string

const (
	// UnitBusinessDays counts only forensic business days.
	UnitBusinessDays Unit = "business_days"

	// UnitCalendarDays counts every calendar day.
	UnitCalendarDays Unit = "calendar_days"
)

// ErrRuleNotFound indicates no rule is configured for a
// (process type, act type) pair. Callers handle it as normal control flow.
var ErrRuleNotFound = errors.New("no procedural rule configured")

// Rule defines the statutory deadline length for a procedural act.
type Rule struct {
	Process     string `yaml:"process" json:"process"`
	Act         string `yaml:"act" json:"act"`
	Duration    int    `yaml:"duration" json:"duration"`
	Unit        Unit   `yaml:"unit" json:"unit"`
	Description string `yaml:"description" json:"description"`
}

// PartyAdjustment adjusts a rule's duration for a litigant category.
// Multiplier is at least 1 and ExtraDays at least 0; the identity
// adjustment leaves the duration unchanged.
type PartyAdjustment struct {
	Party       string  `yaml:"party" json:"party"`
	Multiplier  float64 `yaml:"multiplier" json:"multiplier"`
	ExtraDays   int     `yaml:"extra_days" json:"extra_days"`
	Description string  `yaml:"description" json:"description"`
}

// Identity returns the no-op adjustment applied when no party type is
// given or none matches.
func Identity() PartyAdjustment {
	return PartyAdjustment{Multiplier: 1, Description: "prazo simples"}
}

// Config is a read-only snapshot of rules and party adjustments. Build it
// with NewConfig, DefaultConfig, or the YAML loaders; never mutate it
// after construction.
type Config struct {
	rules       map[ruleKey]Rule
	adjustments map[string]PartyAdjustment
}

type ruleKey struct {
	process string
	act     string
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewConfig builds a snapshot from rule and adjustment lists. Later
// duplicates win.
func NewConfig(rules []Rule, adjustments []PartyAdjustment) *Config {
	cfg := &Config{
		rules:       make(map[ruleKey]Rule, len(rules)),
		adjustments: make(map[string]PartyAdjustment, len(adjustments)),
	}
	for _, rule := range rules {
		cfg.rules[ruleKey{normalizeKey(rule.Process), normalizeKey(rule.Act)}] = rule
	}
	for _, adj := range adjustments {
		cfg.adjustments[normalizeKey(adj.Party)] = adj
	}
	return cfg
}

// ResolveRule looks up the rule for a (process type, act type) pair.
// Matching is case-insensitive.
func (c *Config) ResolveRule(process, act string) (Rule, bool) {
	rule, ok := c.rules[ruleKey{normalizeKey(process), normalizeKey(act)}]
	return rule, ok
}

// ResolveAdjustment looks up the adjustment for a party type, returning
// the identity adjustment when the party is empty or unknown.
func (c *Config) ResolveAdjustment(party string) PartyAdjustment {
	if party == "" {
		return Identity()
	}
	if adj, ok := c.adjustments[normalizeKey(party)]; ok {
		return adj
	}
	return Identity()
}

// Rules returns all configured rules sorted by process, then act.
func (c *Config) Rules() []Rule {
	rules := make([]Rule, 0, len(c.rules))
	for _, rule := range c.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Process != rules[j].Process {
			return rules[i].Process < rules[j].Process
		}
		return rules[i].Act < rules[j].Act
	})
	return rules
}

// Adjustments returns all configured party adjustments sorted by party.
func (c *Config) Adjustments() []PartyAdjustment {
	adjustments := make([]PartyAdjustment, 0, len(c.adjustments))
	for _, adj := range c.adjustments {
		adjustments = append(adjustments, adj)
	}
	sort.Slice(adjustments, func(i, j int) bool {
		return adjustments[i].Party < adjustments[j].Party
	})
	return adjustments
}

// AdjustedDuration applies a party adjustment to a rule duration:
// ceil(duration × multiplier) + extra days. Rounding is always upward,
// so 3 days at ×1.5 gives 5, never 4.
func AdjustedDuration(duration int, adj PartyAdjustment) int {
	multiplier := adj.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	adjusted := int(math.Ceil(float64(duration) * multiplier))
	return adjusted + adj.ExtraDays
}
