// Package main provides the CLI entrypoint for klokkijken.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/klokkijken/internal/config"
	"github.com/verte-zerg/klokkijken/internal/dutch"
	"github.com/verte-zerg/klokkijken/internal/generator"
	"github.com/verte-zerg/klokkijken/internal/model"
	"github.com/verte-zerg/klokkijken/internal/prompt"
	"github.com/verte-zerg/klokkijken/internal/session"
	"github.com/verte-zerg/klokkijken/internal/tui"
)

const (
	defaultLevel      = int(model.LevelQuarters)
	defaultRounds     = 0
	defaultWeakFactor = 2.0
	defaultSeed       = 0
)

var (
	quizLevel      int
	quizKinds      string
	quizRounds     int
	quizFocusWeak  bool
	quizWeakFactor float64
	quizSeed       int64
	quizPlain      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "klokkijken",
		Short:         "Leer klokkijken in het Nederlands",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runQuizCmd,
	}

	rootCmd.Flags().IntVar(&quizLevel, "level", defaultLevel, "difficulty level (1-4)")
	rootCmd.Flags().StringVar(&quizKinds, "kinds", "", "comma-separated exercise kinds (default: all)")
	rootCmd.Flags().IntVar(&quizRounds, "rounds", defaultRounds, "questions per run (0 = until stopped)")
	rootCmd.Flags().BoolVar(&quizFocusWeak, "focus-weak", false, "ask weak exercise kinds more often")
	rootCmd.Flags().Float64Var(&quizWeakFactor, "weak-factor", defaultWeakFactor, "extra weight for weak exercise kinds")
	rootCmd.Flags().Int64Var(&quizSeed, "seed", defaultSeed, "random seed (0 = time based)")
	rootCmd.Flags().BoolVar(&quizPlain, "plain", false, "use the line-based quiz instead of the TUI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSayCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newKindsCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveQuizConfig(cmd, config.DefaultConfigPath())
	if err != nil {
		return err
	}

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewWithSeed(cfg.Seed)
	}

	if cfg.Plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := prompt.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), gen, cfg, session.SystemClock{}); err != nil {
			return fmt.Errorf("failed to run quiz: %w", err)
		}
		return nil
	}

	program := tea.NewProgram(tui.NewModel(cfg, gen, session.SystemClock{}), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveQuizConfig merges defaults, the config file, the environment and
// the flags, in increasing order of precedence.
func resolveQuizConfig(cmd *cobra.Command, path string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	q := fileCfg.Quiz
	applyIntConfig(cmd, "level", &quizLevel, q.Level)
	applyListConfig(cmd, "kinds", &quizKinds, q.Kinds)
	applyIntConfig(cmd, "rounds", &quizRounds, q.Rounds)
	applyBoolConfig(cmd, "focus-weak", &quizFocusWeak, q.FocusWeak)
	applyFloatConfig(cmd, "weak-factor", &quizWeakFactor, q.WeakFactor)
	applyInt64Config(cmd, "seed", &quizSeed, q.Seed)

	kinds, err := parseKinds(quizKinds)
	if err != nil {
		return model.Config{}, err
	}
	cfg := model.Config{
		Level:      model.Level(quizLevel),
		Kinds:      kinds,
		Rounds:     quizRounds,
		FocusWeak:  quizFocusWeak,
		WeakFactor: quizWeakFactor,
		Seed:       quizSeed,
		Plain:      quizPlain,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func parseKinds(value string) ([]model.Kind, error) {
	var kinds []model.Kind
	seen := map[model.Kind]struct{}{}
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kind, err := model.ParseKind(part)
		if err != nil {
			return nil, fmt.Errorf("--kinds: %w (run: klokkijken kinds)", err)
		}
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func validateConfig(cfg model.Config) error {
	if !cfg.Level.Valid() {
		return fmt.Errorf("--level must be between 1 and 4")
	}
	if cfg.Rounds < 0 {
		return fmt.Errorf("--rounds must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	created, err := config.EnsureConfigFile(path)
	if err != nil {
		return err
	}
	if created {
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newSayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "say H:MM...",
		Short:   "Print the Dutch phrase for clock times",
		Example: "  klokkijken say 3:15 10:25",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runSayCmd,
	}
}

func runSayCmd(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		t, err := model.ParseDigital(arg)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", arg, err)
		}
		phrase, err := dutch.Verbalize(t.Hour, t.Minute)
		if err != nil {
			return fmt.Errorf("failed to verbalize %q: %w", arg, err)
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.Digital(), phrase); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse PHRASE",
		Short:   "Print the clock time for a Dutch phrase",
		Example: "  klokkijken parse tien voor half vier",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runParseCmd,
	}
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	phrase := strings.Join(args, " ")
	t, err := dutch.Parse(phrase)
	if err != nil {
		return fmt.Errorf("failed to parse phrase: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), t.Digital()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List difficulty levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(model.AllLevels()))
			for _, level := range model.AllLevels() {
				rows = append(rows, []string{strconv.Itoa(int(level)), level.Name(), level.Description()})
			}
			return writeTable(cmd.OutOrStdout(), []string{"Niveau", "Naam", "Omschrijving"}, rows)
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List exercise kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(model.AllKinds()))
			for _, kind := range model.AllKinds() {
				rows = append(rows, []string{string(kind), kind.Label(), kind.Description()})
			}
			return writeTable(cmd.OutOrStdout(), []string{"Soort", "Oefening", "Omschrijving"}, rows)
		},
	}
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		})
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyListConfig(cmd *cobra.Command, name string, target *string, value []string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = strings.Join(value, ",")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
