package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sgstyle/internal/diag"
	"sgstyle/internal/lint"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List registered rules and their effective state",
	Long:  `Print every registered rule with the enabled state and severity that the current configuration resolves to`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	cfg, cfgPath, err := resolveConfig(cmd, nil)
	if err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	// Контексту не нужно дерево: резолюция правил происходит на
	// конструировании.
	ctx := lint.NewContext(lint.Pass{Config: cfg})

	type row struct {
		name     string
		enabled  bool
		severity diag.Severity
		doc      string
	}
	var rows []row
	for _, r := range lint.Default().Rules() {
		m := r.Meta()
		rows = append(rows, row{
			name:     m.Name,
			enabled:  ctx.Enabled(m.Name),
			severity: ctx.SeverityFor(m.Name),
			doc:      m.Doc,
		})
	}
	rows = append(rows, row{
		name:     diag.RuleWhitespace,
		enabled:  ctx.Enabled(diag.RuleWhitespace),
		severity: ctx.SeverityFor(diag.RuleWhitespace),
		doc:      "whitespace must match the canonical rendering (built in)",
	})

	if cfgPath != "" {
		fmt.Fprintf(os.Stdout, "rules (config: %s)\n", cfgPath)
	} else {
		fmt.Fprintln(os.Stdout, "rules (defaults, no sgstyle.toml found)")
	}

	onStyle := color.New(color.FgGreen)
	offStyle := color.New(color.FgRed)
	if useColor {
		onStyle.EnableColor()
		offStyle.EnableColor()
	} else {
		onStyle.DisableColor()
		offStyle.DisableColor()
	}

	for _, r := range rows {
		state := onStyle.Sprint("enabled ")
		if !r.enabled {
			state = offStyle.Sprint("disabled")
		}
		fmt.Fprintf(os.Stdout, "  %-16s %s %-7s %s\n",
			r.name, state, r.severity.String(), r.doc)
	}
	return nil
}
