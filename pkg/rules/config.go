package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlConfig is the YAML-serializable configuration file format.
type yamlConfig struct {
	Rules       []Rule            `yaml:"rules"`
	PartyTypes  []PartyAdjustment `yaml:"party_types"`
	Description string            `yaml:"description,omitempty"`
}

// ParseConfig builds a Config from YAML bytes. Every rule must carry a
// process, an act, a positive duration, and a known unit.
func ParseConfig(data []byte) (*Config, error) {
	var file yamlConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rule configuration: %w", err)
	}

	for i, rule := range file.Rules {
		if rule.Process == "" || rule.Act == "" {
			return nil, fmt.Errorf("rule %d: process and act are required", i)
		}
		if rule.Duration <= 0 {
			return nil, fmt.Errorf("rule %d (%s/%s): duration must be positive", i, rule.Process, rule.Act)
		}
		if rule.Unit != UnitBusinessDays && rule.Unit != UnitCalendarDays {
			return nil, fmt.Errorf("rule %d (%s/%s): unknown unit %q", i, rule.Process, rule.Act, rule.Unit)
		}
	}
	for i, adj := range file.PartyTypes {
		if adj.Party == "" {
			return nil, fmt.Errorf("party type %d: party is required", i)
		}
		if adj.Multiplier < 1 {
			return nil, fmt.Errorf("party type %d (%s): multiplier must be at least 1", i, adj.Party)
		}
		if adj.ExtraDays < 0 {
			return nil, fmt.Errorf("party type %d (%s): extra_days cannot be negative", i, adj.Party)
		}
	}

	return NewConfig(file.Rules, file.PartyTypes), nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule configuration: %w", err)
	}
	return ParseConfig(data)
}

// MarshalConfig serializes a Config back to YAML, for seeding new tenant
// configuration files.
func MarshalConfig(cfg *Config) ([]byte, error) {
	file := yamlConfig{
		Rules:      cfg.Rules(),
		PartyTypes: cfg.Adjustments(),
	}
	return yaml.Marshal(file)
}

// DefaultConfig returns the built-in rule table: the common civil, labor,
// and criminal procedural deadlines plus the doubled-deadline litigant
// categories.
func DefaultConfig() *Config {
	rules := []Rule{
		{Process: "civil", Act: "contestação", Duration: 15, Unit: UnitBusinessDays,
			Description: "Contestação - 15 dias úteis (CPC art. 335)"},
		{Process: "civil", Act: "apelação", Duration: 15, Unit: UnitBusinessDays,
			Description: "Apelação - 15 dias úteis (CPC art. 1.003)"},
		{Process: "civil", Act: "agravo de instrumento", Duration: 15, Unit: UnitBusinessDays,
			Description: "Agravo de instrumento - 15 dias úteis (CPC art. 1.003)"},
		{Process: "civil", Act: "embargos de declaração", Duration: 5, Unit: UnitBusinessDays,
			Description: "Embargos de declaração - 5 dias úteis (CPC art. 1.023)"},
		{Process: "civil", Act: "cumprimento de sentença", Duration: 15, Unit: UnitBusinessDays,
			Description: "Pagamento voluntário - 15 dias úteis (CPC art. 523)"},
		{Process: "labor", Act: "contestação", Duration: 15, Unit: UnitBusinessDays,
			Description: "Defesa trabalhista - 15 dias úteis"},
		{Process: "labor", Act: "recurso ordinário", Duration: 8, Unit: UnitBusinessDays,
			Description: "Recurso ordinário - 8 dias úteis (CLT art. 895)"},
		{Process: "labor", Act: "embargos de declaração", Duration: 5, Unit: UnitBusinessDays,
			Description: "Embargos de declaração - 5 dias úteis (CLT art. 897-A)"},
		{Process: "criminal", Act: "apelação", Duration: 5, Unit: UnitCalendarDays,
			Description: "Apelação criminal - 5 dias corridos (CPP art. 593)"},
		{Process: "criminal", Act: "recurso em sentido estrito", Duration: 5, Unit: UnitCalendarDays,
			Description: "Recurso em sentido estrito - 5 dias corridos (CPP art. 586)"},
		{Process: "criminal", Act: "embargos de declaração", Duration: 2, Unit: UnitCalendarDays,
			Description: "Embargos de declaração - 2 dias corridos (CPP art. 619)"},
	}
	partyTypes := []PartyAdjustment{
		{Party: "fazenda_publica", Multiplier: 2,
			Description: "Fazenda Pública - prazo em dobro (CPC art. 183)"},
		{Party: "ministerio_publico", Multiplier: 2,
			Description: "Ministério Público - prazo em dobro (CPC art. 180)"},
		{Party: "defensoria_publica", Multiplier: 2,
			Description: "Defensoria Pública - prazo em dobro (CPC art. 186)"},
		{Party: "litisconsortes", Multiplier: 2,
			Description: "Litisconsortes com procuradores distintos - prazo em dobro (CPC art. 229)"},
	}
	return NewConfig(rules, partyTypes)
}
