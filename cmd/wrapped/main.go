// Package main provides the CLI entrypoint for wrapped.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wrapped/internal/config"
	"github.com/verte-zerg/wrapped/internal/document"
	"github.com/verte-zerg/wrapped/internal/slides"
	"github.com/verte-zerg/wrapped/internal/slideshow"
	"github.com/verte-zerg/wrapped/internal/tui"
)

const (
	defaultPrintWidth = 80
	logFileMode       = 0o644
)

var (
	showData        string
	showNoMouse     bool
	showNoAltScreen bool
	showLogFile     string

	printData  string
	printWidth int

	checkData string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wrapped",
		Short:         "Training year in review, one slide at a time",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runShowCmd,
	}

	rootCmd.Flags().StringVar(&showData, "data", "", "statistics document (default: bundled sample)")
	rootCmd.Flags().BoolVar(&showNoMouse, "no-mouse", false, "disable click to advance")
	rootCmd.Flags().BoolVar(&showNoAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")
	rootCmd.Flags().StringVar(&showLogFile, "log-file", "", "write navigation events to this file")

	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func loadFileConfig() (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load environment: %w", err)
	}
	return envCfg.Merge(fileCfg), nil
}

func loadDocument(path string) (*document.Document, error) {
	doc, err := document.Load(config.ResolveDocumentPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}
	if field := doc.SkippedField(); field != "" {
		logErrf("ignoring %s: wrong type\n", field)
	}
	return doc, nil
}

func runShowCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "data", &showData, fileCfg.Show.Data)
	applyNegatedBoolConfig(cmd, "no-mouse", &showNoMouse, fileCfg.Show.Mouse)
	applyNegatedBoolConfig(cmd, "no-alt-screen", &showNoAltScreen, fileCfg.Show.AltScreen)
	applyStringConfig(cmd, "log-file", &showLogFile, fileCfg.Show.LogFile)

	doc, err := loadDocument(showData)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		logErrln("stdout is not a terminal; printing slides instead")
		return printSlides(cmd.OutOrStdout(), doc, resolvePrintWidth(0, fileCfg.Print.Width))
	}

	var listeners []slideshow.Listener
	if showLogFile != "" {
		f, err := os.OpenFile(showLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}()
		listeners = append(listeners, slideshow.LogListener(slideshow.NewLogger(f)))
	}

	program := tea.NewProgram(tui.NewModel(doc, listeners...), programOptions(showNoAltScreen, showNoMouse)...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func programOptions(noAltScreen, noMouse bool) []tea.ProgramOption {
	var opts []tea.ProgramOption
	if !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print every slide to stdout",
		Args:  cobra.NoArgs,
		RunE:  runPrintCmd,
	}
	cmd.Flags().StringVar(&printData, "data", "", "statistics document (default: bundled sample)")
	cmd.Flags().IntVar(&printWidth, "width", 0, "output width (default: terminal width or 80)")
	return cmd
}

func runPrintCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "data", &printData, fileCfg.Show.Data)
	applyIntConfig(cmd, "width", &printWidth, fileCfg.Print.Width)
	if printWidth < 0 {
		return fmt.Errorf("--width must be >= 0")
	}

	doc, err := loadDocument(printData)
	if err != nil {
		return err
	}
	return printSlides(cmd.OutOrStdout(), doc, resolvePrintWidth(printWidth, nil))
}

// printSlides renders every slide as active, one after another.
func printSlides(w io.Writer, doc *document.Document, width int) error {
	deck := slides.Deck()
	for i, s := range deck {
		out := slides.Render(s.View(true, doc), width, 0)
		if width > 0 {
			out = lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
		}
		header := fmt.Sprintf("%d/%d %s", i+1, len(deck), s.Name)
		if _, err := fmt.Fprintf(w, "%s\n\n%s\n\n", header, out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func resolvePrintWidth(width int, configured *int) int {
	if width > 0 {
		return width
	}
	if configured != nil && *configured > 0 {
		return *configured
	}
	return terminalWidth()
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultPrintWidth
	}
	return width
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a statistics document",
		Args:  cobra.NoArgs,
		RunE:  runCheckCmd,
	}
	cmd.Flags().StringVar(&checkData, "data", "", "statistics document (default: bundled sample)")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "data", &checkData, fileCfg.Show.Data)

	doc, err := loadDocument(checkData)
	if err != nil {
		return err
	}
	return writeCheckReport(cmd.OutOrStdout(), doc)
}

// writeCheckReport prints the contract findings and fails when there are any.
func writeCheckReport(w io.Writer, doc *document.Document) error {
	issues := document.Check(doc)
	lines := []string{
		fmt.Sprintf("year: %d", doc.Year),
		fmt.Sprintf("gym_log: %d entries", len(doc.GymLog)),
		fmt.Sprintf("cardio_log: %d entries", len(doc.CardioLog)),
	}
	for _, issue := range issues {
		lines = append(lines, "issue: "+issue.String())
	}
	if len(issues) == 0 {
		lines = append(lines, "ok")
	}
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(issues) > 0 {
		return fmt.Errorf("document has %d issue(s)", len(issues))
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
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
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

// applyNegatedBoolConfig maps a positive config key onto a --no-* flag.
func applyNegatedBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = !*value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wrapped configuration
# Uncomment a value to enable it. CLI flags and WRAPPED_* variables override config values.

[show]
# data = ""               # Statistics document (default %q, then bundled sample)
# mouse = true            # Click to advance
# alt-screen = true       # Use the alternate screen
# log-file = ""           # Write navigation events to this file

[print]
# width = %d              # Output width when stdout is not a terminal
`,
		config.DefaultDocumentPath(),
		defaultPrintWidth,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
