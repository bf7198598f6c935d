package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coolbeans/prazo/pkg/calendar"
	"github.com/coolbeans/prazo/pkg/cnj"
	"github.com/coolbeans/prazo/pkg/deadline"
	"github.com/coolbeans/prazo/pkg/rules"
	"github.com/coolbeans/prazo/pkg/tribunal"
	"github.com/coolbeans/prazo/pkg/types"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "prazo",
		Short: "Procedural deadline and jurisdiction toolkit",
		Long: `Prazo computes legally binding procedural deadlines over the
Brazilian forensic calendar and resolves standardized case numbers to
their owning court systems.

It provides:
  - Validation and canonical formatting of 20-digit case numbers
  - Jurisdiction resolution with e-filing consultation links
  - The national holiday calendar, including Easter-relative dates
  - Deadline computation with party-type adjustments and an audit trail`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(jurisdictionCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(deadlineCmd())
	rootCmd.AddCommand(rulesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "parse [case-number]",
		Short: "Parse and validate a case number",
		Long: `Parse a 20-digit standardized case number in any punctuation
style, validate its check digits, and print the structural fields.

Example:
  prazo parse 0001234-89.2024.8.26.0100
  prazo parse 00012348920248260100 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cnj.Parse(args[0])
			if err != nil {
				switch {
				case errors.Is(err, cnj.ErrMalformed):
					return fmt.Errorf("invalid case number: %w", err)
				case errors.Is(err, cnj.ErrCheckDigit):
					return fmt.Errorf("case number failed verification: %w", err)
				default:
					return err
				}
			}

			if jsonOutput {
				return printJSON(id)
			}

			fmt.Printf("Case number: %s\n", id.Format())
			fmt.Printf("  Sequence:     %s\n", id.Sequence)
			fmt.Printf("  Check digits: %s (valid)\n", id.CheckDigits)
			fmt.Printf("  Filing year:  %s\n", id.Year)
			fmt.Printf("  Segment:      %s\n", id.Segment)
			fmt.Printf("  Court:        %s\n", id.Court)
			fmt.Printf("  Origin unit:  %s\n", id.Origin)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func detectCmd() *cobra.Command {
	var sourceFile string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "detect [text]",
		Short: "Detect valid case numbers in free text",
		Long: `Scan free text for case-number candidates and print those that
pass check-digit validation.

Example:
  prazo detect "autos 0001234-89.2024.8.26.0100 e 8809441-52.2019.8.13.0024"
  prazo detect --source intimacao.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			switch {
			case sourceFile != "":
				data, err := os.ReadFile(sourceFile)
				if err != nil {
					return fmt.Errorf("reading source file: %w", err)
				}
				text = string(data)
			case len(args) > 0:
				text = strings.Join(args, " ")
			default:
				return fmt.Errorf("provide text as an argument or use --source")
			}

			identifiers := cnj.Detect(text)
			if jsonOutput {
				return printJSON(identifiers)
			}

			if len(identifiers) == 0 {
				fmt.Println("No valid case numbers found.")
				return nil
			}
			fmt.Printf("Found %d valid case number(s):\n", len(identifiers))
			for _, id := range identifiers {
				fmt.Printf("  %s\n", id.Format())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceFile, "source", "", "Read text from a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func jurisdictionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "jurisdiction [case-number]",
		Short: "Resolve the court system owning a case number",
		Long: `Validate a case number and resolve its judicial-branch segment
and court code against the court registry, printing the owning court and
the public consultation link for its e-filing platform.

Example:
  prazo jurisdiction 0001234-89.2024.8.26.0100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cnj.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid case number: %w", err)
			}

			registry := tribunal.DefaultRegistry()
			entry, ok := registry.Resolve(id)
			if !ok {
				fmt.Printf("No registry entry for segment %s, court %s.\n",
					id.Segment, id.Court)
				return nil
			}

			link := tribunal.BuildLink(id, entry)
			if jsonOutput {
				return printJSON(map[string]any{
					"case_number": id.Format(),
					"court":       entry,
					"link":        link,
				})
			}

			fmt.Printf("Case number: %s\n", id.Format())
			fmt.Printf("  Court:    %s (%s)\n", entry.Name, entry.Acronym)
			fmt.Printf("  Branch:   %s\n", entry.Branch)
			fmt.Printf("  Platform: %s\n", entry.Platform)
			fmt.Printf("  Link:     %s\n", link)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func holidaysCmd() *cobra.Command {
	var jsonOutput bool
	var includeOptional bool

	cmd := &cobra.Command{
		Use:   "holidays [year]",
		Short: "List the forensic holidays of a year",
		Long: `List the fixed national and Easter-relative holidays for a year.

Example:
  prazo holidays 2025
  prazo holidays 2025 --optional --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}

			cal := calendar.New()
			holidays := cal.ForYear(year)
			if !includeOptional {
				filtered := holidays[:0]
				for _, h := range holidays {
					if h.Kind != calendar.KindRegionalOptional {
						filtered = append(filtered, h)
					}
				}
				holidays = filtered
			}

			if jsonOutput {
				return printJSON(holidays)
			}

			fmt.Printf("Holidays for %d:\n", year)
			for _, h := range holidays {
				fmt.Printf("  %s  %-28s (%s)\n", h.Date, h.Name, h.Kind)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&includeOptional, "optional", false, "Include optional observances")
	return cmd
}

func deadlineCmd() *cobra.Command {
	var (
		eventDate  string
		process    string
		act        string
		party      string
		origin     string
		caseNumber string
		configFile string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Compute a procedural deadline",
		Long: `Compute the final date of a procedural deadline from a notice
event, a (process, act) rule, and an optional party-type adjustment.

The origin of notice selects the trigger-date policy: gazette,
personal_confirmed, personal_unconfirmed, or summons_confirmed.

Example:
  prazo deadline --event 2025-03-10 --process civil --act contestação
  prazo deadline --event 2025-03-14 --process civil --act apelação \
    --origin gazette --party fazenda_publica --config rules.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := types.ParseDate(eventDate)
			if err != nil {
				return err
			}

			cfg := rules.DefaultConfig()
			if configFile != "" {
				cfg, err = rules.LoadConfig(configFile)
				if err != nil {
					return err
				}
			}

			engine := deadline.NewEngine(calendar.New())
			result, err := engine.Compute(deadline.Request{
				Event:      event,
				Process:    process,
				Act:        act,
				Party:      party,
				Origin:     deadline.NoticeOrigin(origin),
				CaseNumber: caseNumber,
			}, cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(result)
			}

			fmt.Printf("Final date:    %s (%s)\n", result.FinalDate, result.FinalDate.Weekday())
			fmt.Printf("Trigger date:  %s\n", result.TriggerDate)
			fmt.Printf("Duration:      %d %s (adjusted)\n", result.AdjustedDuration, result.RuleApplied.Unit)
			fmt.Printf("Calendar days: %d\n", result.CalendarDays)
			fmt.Printf("Business days: %d\n", result.BusinessDays)
			if len(result.Holidays) > 0 {
				fmt.Println("Holidays in window:")
				for _, h := range result.Holidays {
					fmt.Printf("  %s  %s\n", h.Date, h.Name)
				}
			}
			fmt.Println("Observations:")
			for _, obs := range result.Observations {
				fmt.Printf("  - %s\n", obs)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&eventDate, "event", "", "Notice event date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&process, "process", "", "Process type (required)")
	cmd.Flags().StringVar(&act, "act", "", "Act type (required)")
	cmd.Flags().StringVar(&party, "party", "", "Party type for deadline adjustment")
	cmd.Flags().StringVar(&origin, "origin", string(deadline.OriginPersonalConfirmed),
		"Origin of notice (gazette, personal_confirmed, personal_unconfirmed, summons_confirmed)")
	cmd.Flags().StringVar(&caseNumber, "case", "", "Case number for the audit trail")
	cmd.Flags().StringVar(&configFile, "config", "", "Rule configuration YAML file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("process")
	_ = cmd.MarkFlagRequired("act")
	return cmd
}

func rulesCmd() *cobra.Command {
	var configFile string
	var exportFile string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List or export the procedural rule configuration",
		Long: `List the configured procedural rules and party-type adjustments,
or export the built-in configuration as a YAML starting point for a
custom rule set.

Example:
  prazo rules
  prazo rules --config tenant-rules.yaml
  prazo rules --export rules.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rules.DefaultConfig()
			if configFile != "" {
				loaded, err := rules.LoadConfig(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if exportFile != "" {
				data, err := rules.MarshalConfig(cfg)
				if err != nil {
					return err
				}
				if err := os.WriteFile(exportFile, data, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", exportFile, err)
				}
				fmt.Printf("Wrote rule configuration to %s\n", exportFile)
				return nil
			}

			fmt.Println("Procedural rules:")
			for _, rule := range cfg.Rules() {
				fmt.Printf("  %-10s %-28s %3d %-14s %s\n",
					rule.Process, rule.Act, rule.Duration, rule.Unit, rule.Description)
			}
			fmt.Println("\nParty-type adjustments:")
			for _, adj := range cfg.Adjustments() {
				fmt.Printf("  %-20s x%.1f +%d  %s\n",
					adj.Party, adj.Multiplier, adj.ExtraDays, adj.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Rule configuration YAML file")
	cmd.Flags().StringVar(&exportFile, "export", "", "Write the configuration as YAML to a file")
	return cmd
}

// printJSON writes a value as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
