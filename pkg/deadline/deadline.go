// Package deadline computes legally binding procedural deadlines. It
// composes the holiday calendar, the business-day arithmetic, and the
// rule/party-adjustment configuration into a single all-or-nothing
// computation: the trigger date is derived from how notice was given, the
// adjusted duration is walked across the calendar, and the holidays
// encountered in the window are collected for the caller's audit trail.
package deadline

import (
	"errors"
	"fmt"

	"github.com/coolbeans/prazo/pkg/calendar"
	"github.com/coolbeans/prazo/pkg/rules"
	"github.com/coolbeans/prazo/pkg/types"
)

// NoticeOrigin classifies how the party was notified. It selects the
// trigger-date policy.
type NoticeOrigin string

const (
	// OriginGazette is publication in the official gazette: the deadline
	// triggers on the next business day after publication.
	OriginGazette NoticeOrigin = "gazette"

	// OriginPersonalConfirmed is personal notice with confirmed receipt:
	// the confirmation date itself triggers the deadline.
	OriginPersonalConfirmed NoticeOrigin = "personal_confirmed"

	// OriginPersonalUnconfirmed is personal notice without confirmation:
	// the deadline triggers exactly 10 calendar days after publication,
	// regardless of business days.
	OriginPersonalUnconfirmed NoticeOrigin = "personal_unconfirmed"

	// OriginSummonsConfirmed is a formal summons with confirmed receipt:
	// the deadline triggers 5 business days after confirmation.
	OriginSummonsConfirmed NoticeOrigin = "summons_confirmed"
)

// unconfirmedDeferralDays is the fixed calendar-day deferral fiction for
// personal notice without confirmed receipt.
const unconfirmedDeferralDays = 10

// summonsGraceDays is the business-day grace period after a confirmed
// formal summons.
const summonsGraceDays = 5

// ErrMissingField indicates a required request field is absent.
var ErrMissingField = errors.New("missing required field")

// Request is the immutable input to a deadline computation.
type Request struct {
	// Event is the notice event date: the publication date for gazette
	// and unconfirmed origins, the confirmation date otherwise.
	Event types.Date `json:"event"`

	Process string       `json:"process"`
	Act     string       `json:"act"`
	Party   string       `json:"party,omitempty"`
	Origin  NoticeOrigin `json:"origin"`

	// CaseNumber is optional, carried through for diagnostics and
	// external linking only.
	CaseNumber string `json:"case_number,omitempty"`

	// NoticeText is the raw notice body, consulted only by the optional
	// suggestion collaborator.
	NoticeText string `json:"notice_text,omitempty"`
}

// Result is the immutable outcome of a deadline computation.
// Recomputation (e.g., after accepting a suggested override) produces a
// new Result; existing values are never mutated.
type Result struct {
	FinalDate    types.Date         `json:"final_date"`
	TriggerDate  types.Date         `json:"trigger_date"`
	CalendarDays int                `json:"calendar_days"`
	BusinessDays int                `json:"business_days"`
	Holidays     []calendar.Holiday `json:"holidays,omitempty"`

	RuleApplied       rules.Rule            `json:"rule_applied"`
	AdjustmentApplied rules.PartyAdjustment `json:"adjustment_applied"`
	AdjustedDuration  int                   `json:"adjusted_duration"`

	Observations []string `json:"observations,omitempty"`
}

// Engine computes deadlines against a holiday calendar. The engine holds
// no rule state: every computation receives its configuration snapshot
// explicitly, so multi-tenant rule sets need no coordination.
type Engine struct {
	calendar  *calendar.Calendar
	suggester Suggester
}

// NewEngine creates an engine over the given calendar with no suggestion
// collaborator.
func NewEngine(cal *calendar.Calendar) *Engine {
	return &Engine{calendar: cal, suggester: NopSuggester{}}
}

// NewEngineWithSuggester creates an engine that consults the given
// advisory collaborator before resolving rules.
func NewEngineWithSuggester(cal *calendar.Calendar, suggester Suggester) *Engine {
	if suggester == nil {
		suggester = NopSuggester{}
	}
	return &Engine{calendar: cal, suggester: suggester}
}

// Compute runs the deadline computation for a request against a rule
// configuration snapshot. It is all-or-nothing: a missing field or an
// unresolvable (process, act) pair fails the whole request and no partial
// result is returned. Identical inputs and snapshots yield identical
// results.
func (e *Engine) Compute(req Request, cfg *rules.Config) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	trigger, triggerNote := e.resolveTrigger(req)

	rule, ok := cfg.ResolveRule(req.Process, req.Act)
	if !ok {
		return nil, fmt.Errorf("%w for process %q, act %q",
			rules.ErrRuleNotFound, req.Process, req.Act)
	}
	adjustment := cfg.ResolveAdjustment(req.Party)
	duration := rules.AdjustedDuration(rule.Duration, adjustment)

	var final types.Date
	switch rule.Unit {
	case rules.UnitCalendarDays:
		final = e.calendar.AddCalendarDays(trigger, duration)
	default:
		final = e.calendar.AddBusinessDays(trigger, duration)
	}

	result := &Result{
		FinalDate:         final,
		TriggerDate:       trigger,
		CalendarDays:      trigger.DaysUntil(final),
		BusinessDays:      e.calendar.CountBusinessDays(trigger.AddDays(1), final),
		Holidays:          e.calendar.HolidaysBetween(trigger, final),
		RuleApplied:       rule,
		AdjustmentApplied: adjustment,
		AdjustedDuration:  duration,
	}

	if triggerNote != "" {
		result.Observations = append(result.Observations, triggerNote)
	}
	result.Observations = append(result.Observations,
		fmt.Sprintf("regra aplicada: %s", rule.Description))
	result.Observations = append(result.Observations,
		fmt.Sprintf("ajuste de parte: %s", adjustment.Description))
	for _, holiday := range result.Holidays {
		result.Observations = append(result.Observations,
			fmt.Sprintf("feriado no período: %s (%s)", holiday.Name, holiday.Date))
	}

	return result, nil
}

// validate checks the required request fields.
func validate(req Request) error {
	if req.Event.IsZero() {
		return fmt.Errorf("%w: event date", ErrMissingField)
	}
	if req.Process == "" {
		return fmt.Errorf("%w: process type", ErrMissingField)
	}
	if req.Act == "" {
		return fmt.Errorf("%w: act type", ErrMissingField)
	}
	return nil
}

// resolveTrigger derives the legally effective start date from the
// origin-of-notice policy. The note records any shift applied.
func (e *Engine) resolveTrigger(req Request) (types.Date, string) {
	switch req.Origin {
	case OriginGazette:
		trigger := e.calendar.NextBusinessDay(req.Event)
		return trigger, fmt.Sprintf(
			"publicação no diário oficial em %s; prazo inicia no primeiro dia útil seguinte (%s)",
			req.Event, trigger)

	case OriginPersonalUnconfirmed:
		trigger := req.Event.AddDays(unconfirmedDeferralDays)
		return trigger, fmt.Sprintf(
			"intimação pessoal sem confirmação; gatilho diferido em %d dias corridos (%s)",
			unconfirmedDeferralDays, trigger)

	case OriginSummonsConfirmed:
		trigger := e.calendar.AddBusinessDays(req.Event, summonsGraceDays)
		return trigger, fmt.Sprintf(
			"citação confirmada em %s; gatilho após %d dias úteis (%s)",
			req.Event, summonsGraceDays, trigger)

	case OriginPersonalConfirmed:
		fallthrough
	default:
		return req.Event, ""
	}
}
