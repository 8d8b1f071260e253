package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/calc/calculator"
	"github.com/unbound-force/calc/internal/config"
	"github.com/unbound-force/calc/internal/evaluate"
	"github.com/unbound-force/calc/internal/report"
	"github.com/unbound-force/calc/internal/scaffold"
	"github.com/unbound-force/calc/internal/taxonomy"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
	Level:           charmlog.WarnLevel,
})

// Set by build flags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	format     string
	mode       string
	precision  int
	verbose    bool
}

// configOverrides carries the flags the user actually set. Nil fields
// leave the file/environment value in place.
type configOverrides struct {
	format    *string
	mode      *string
	precision *int
}

// overrides returns the subset of g that was set on the command line.
func (g *globalFlags) overrides(cmd *cobra.Command) configOverrides {
	var o configOverrides
	if cmd.Flags().Changed("format") {
		o.format = &g.format
	}
	if cmd.Flags().Changed("mode") {
		o.mode = &g.mode
	}
	if cmd.Flags().Changed("precision") {
		o.precision = &g.precision
	}
	return o
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "calc",
		Short: "calc: multiplication and guarded division",
		Long: `calc multiplies and divides numbers from the command line.
Division by zero is reported as an error instead of producing a value.

Operands starting with '-' must follow a '--' separator:

  calc multiply -- -2 5`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "",
		"path to config file (default: ./"+config.DefaultFile+" if present)")
	pf.StringVar(&g.format, "format", "text",
		"output format: text or json")
	pf.StringVar(&g.mode, "mode", "float",
		"numeric mode: float or decimal")
	pf.IntVar(&g.precision, "precision", -1,
		"fractional digits in results (-1 = shortest)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(newOpCmd(g, calculator.OpMultiply,
		"Multiply two numbers", "Print the product of <a> and <b>."))
	root.AddCommand(newOpCmd(g, calculator.OpDivide,
		"Divide two numbers", "Print <a> divided by <b>. Fails when <b> is zero (including -0)."))
	root.AddCommand(newEvalCmd(g))
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newConfigCmd(g))
	root.AddCommand(newInitCmd())
	root.AddCommand(newInteractiveCmd(g))

	return root
}

// loadConfig builds the effective configuration: defaults, then the
// config file, then CALC_* environment variables, then flags.
func loadConfig(path string, o configOverrides) (*config.CalcConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if o.format != nil {
		cfg.Output.Format = *o.format
	}
	if o.mode != nil {
		cfg.Mode = taxonomy.Mode(*o.mode)
	}
	if o.precision != nil {
		cfg.Output.Precision = *o.precision
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		"mode", cfg.Mode, "format", cfg.Output.Format, "precision", cfg.Output.Precision)
	return cfg, nil
}

// evalOptions maps the output settings onto evaluation options. A
// negative precision keeps the shortest representation.
func evalOptions(cfg *config.CalcConfig) evaluate.Options {
	return evaluate.Options{
		Mode:      cfg.Mode,
		Fixed:     cfg.Output.Precision >= 0,
		Precision: cfg.Output.Precision,
		Version:   version,
	}
}

// calcParams holds the inputs for one evaluation run. Exactly one of
// requests or exprs is set.
type calcParams struct {
	requests []evaluate.Request
	exprs    []string
	cfg      *config.CalcConfig
	stdout   io.Writer
}

// runCalc is the extracted, testable body of the operation and eval
// commands.
func runCalc(p calcParams) error {
	cfg := p.cfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := evalOptions(cfg)

	var (
		rpt *taxonomy.Report
		err error
	)
	if p.exprs != nil {
		logger.Debug("evaluating expressions", "count", len(p.exprs), "mode", opts.Mode)
		rpt, err = evaluate.RunExpressions(p.exprs, opts)
	} else {
		logger.Debug("evaluating requests", "count", len(p.requests), "mode", opts.Mode)
		rpt, err = evaluate.Run(p.requests, opts)
	}
	if err != nil {
		return err
	}

	for _, c := range rpt.Calculations {
		if c.Failed() {
			logger.Debug("calculation failed",
				"id", c.ID, "expression", c.Expression, "kind", c.ErrorKind)
		}
	}

	if err := writeReport(p.stdout, cfg.Output.Format, rpt); err != nil {
		return err
	}

	return checkFailures(rpt)
}

// writeReport outputs the report in the requested format.
func writeReport(w io.Writer, format string, rpt *taxonomy.Report) error {
	switch format {
	case "json":
		return report.WriteJSON(w, rpt)
	default:
		return report.WriteText(w, rpt)
	}
}

// checkFailures returns an error naming the failure when any
// calculation in the report failed.
func checkFailures(rpt *taxonomy.Report) error {
	failed := rpt.Failures()
	switch {
	case failed == 0:
		return nil
	case len(rpt.Calculations) == 1:
		c := rpt.Calculations[0]
		return fmt.Errorf("%s: %s", c.Expression, c.Error)
	default:
		return fmt.Errorf("%d of %d calculation(s) failed",
			failed, len(rpt.Calculations))
	}
}

func newOpCmd(g *globalFlags, op calculator.Operation, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " <a> <b>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath, g.overrides(cmd))
			if err != nil {
				return err
			}
			return runCalc(calcParams{
				requests: []evaluate.Request{{Operation: op, A: args[0], B: args[1]}},
				cfg:      cfg,
				stdout:   cmd.OutOrStdout(),
			})
		},
	}
}

func newEvalCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one or more 'a op b' expressions",
		Long: `Evaluate each argument as a binary expression. Operators are
*, x, ×, times or multiply for multiplication and /, ÷, over or divide
for division. Quote expressions that contain spaces or '*':

  calc eval '3 * 4' 10/2 '7 divide 0'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath, g.overrides(cmd))
			if err != nil {
				return err
			}
			return runCalc(calcParams{
				exprs:  args,
				cfg:    cfg,
				stdout: cmd.OutOrStdout(),
			})
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for calc JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of calc --format=json output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

// runShowConfig writes cfg to w as YAML.
func runShowConfig(w io.Writer, cfg *config.CalcConfig) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func newConfigCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration calc would use after applying the config
file, CALC_* environment variables and command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath, g.overrides(cmd))
			if err != nil {
				return err
			}
			return runShowConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

// initParams holds the parsed flags for the init command.
type initParams struct {
	targetDir string
	force     bool
	stdout    io.Writer
}

// runInit is the extracted, testable body of the init command.
func runInit(p initParams) error {
	_, err := scaffold.Run(scaffold.Options{
		TargetDir: p.targetDir,
		Force:     p.force,
		Version:   version,
		Stdout:    p.stdout,
	})
	return err
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.DefaultFile + " to the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initParams{
				force:  force,
				stdout: cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite an existing config file")

	return cmd
}

func newInteractiveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Evaluate expressions in an interactive terminal session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath, g.overrides(cmd))
			if err != nil {
				return err
			}
			return runInteractive(evalOptions(cfg))
		},
	}
}
