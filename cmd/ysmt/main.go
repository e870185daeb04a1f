//go:build cgo
// +build cgo

// ysmt is a small command line front end to the Yices binding: it asserts
// formulas written in the Yices term syntax and reports the solver verdict.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Bupaheh/yices2-go/yices"
)

// solverConfig is the YAML shape accepted by --config.
type solverConfig struct {
	// Logic selects the context setup, e.g. "QF_LIA" or "QF_BV".
	Logic string `yaml:"logic"`
	// Mode is the context mode: one-shot, multi-checks, push-pop, interactive.
	Mode string `yaml:"mode"`
	// Declarations are type declarations, name -> type expression.
	Declarations map[string]string `yaml:"declarations"`
	// Params are search parameters passed to check, name -> value.
	Params map[string]string `yaml:"params"`
}

var (
	verbose    bool
	configPath string
	showModel  bool
)

func main() {
	root := &cobra.Command{
		Use:           "ysmt",
		Short:         "check formulas with the Yices 2 SMT solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				l, err := zap.NewDevelopment()
				if err == nil {
					yices.SetLogger(l)
				}
			}
			yices.Init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			yices.Exit()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver activity")

	version := &cobra.Command{
		Use:   "version",
		Short: "print the Yices library version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("yices %s (%s, %s, built %s)\n",
				yices.Version(), yices.BuildArch(), yices.BuildMode(), yices.BuildDate())
			fmt.Println("mcsat:", yices.HasMCSat())
		},
	}

	check := &cobra.Command{
		Use:   "check [file]",
		Short: "assert the formulas in file (or stdin) and run the solver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
	check.Flags().StringVarP(&configPath, "config", "c", "", "solver configuration in YAML")
	check.Flags().BoolVarP(&showModel, "model", "m", true, "print a model when satisfiable")

	root.AddCommand(version, check)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ysmt:", err)
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	var sc solverConfig
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(raw, &sc); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}

	for name, expr := range sc.Declarations {
		tau, err := yices.ParseType(expr)
		if err != nil {
			return fmt.Errorf("declaration %s: %w", name, err)
		}
		x, err := yices.NewUninterpretedTerm(tau)
		if err != nil {
			return err
		}
		if err := yices.SetTermName(x, name); err != nil {
			return err
		}
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	formulas, err := readFormulas(in)
	if err != nil {
		return err
	}

	cfg, err := yices.NewConfig()
	if err != nil {
		return err
	}
	defer cfg.Close()
	if sc.Logic != "" {
		if err := cfg.DefaultForLogic(sc.Logic); err != nil {
			return fmt.Errorf("logic %s: %w", sc.Logic, err)
		}
	}
	if sc.Mode != "" {
		if err := cfg.Set("mode", sc.Mode); err != nil {
			return err
		}
	}
	ctx, err := yices.NewContext(cfg)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if err := ctx.AssertFormulas(formulas...); err != nil {
		return err
	}

	var params *yices.Params
	if len(sc.Params) > 0 {
		params, err = yices.NewParams()
		if err != nil {
			return err
		}
		defer params.Close()
		for name, value := range sc.Params {
			if err := params.Set(name, value); err != nil {
				return fmt.Errorf("param %s: %w", name, err)
			}
		}
	}

	status, err := ctx.Check(params)
	if err != nil {
		return err
	}
	fmt.Println(status)
	if status == yices.StatusSat && showModel {
		mdl, err := ctx.Model(true)
		if err != nil {
			return err
		}
		defer mdl.Close()
		fmt.Print(mdl.String())
	}
	return nil
}

// readFormulas parses one term expression per non-empty line; ';' starts a
// comment.
func readFormulas(r io.Reader) ([]yices.Term, error) {
	var out []yices.Term
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, ';'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		t, err := yices.ParseTerm(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	return out, sc.Err()
}
