// Package main provides the CLI entrypoint for keydash.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tberndt/keydash/internal/config"
	"github.com/tberndt/keydash/internal/model"
	"github.com/tberndt/keydash/internal/session"
	"github.com/tberndt/keydash/internal/stats"
	"github.com/tberndt/keydash/internal/statsui"
	"github.com/tberndt/keydash/internal/store"
	"github.com/tberndt/keydash/internal/tui"
	"github.com/tberndt/keydash/internal/words"
)

const (
	defaultDurationSeconds = 30
	defaultQueue           = 200
	defaultWindow          = 10
)

var (
	runDuration int
	runDict     string
	runQueue    int
	runSeed     int64

	statsSince  string
	statsLast   int
	statsWindow int
	statsPlain  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keydash",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSessionCmd,
	}

	rootCmd.Flags().IntVar(&runDuration, "duration", defaultDurationSeconds, "session length in seconds")
	rootCmd.Flags().StringVar(&runDict, "dict", "", "dictionary file, one word per line (default: XDG config dir or ./dict.txt)")
	rootCmd.Flags().IntVar(&runQueue, "queue", defaultQueue, "words kept ahead of the cursor")
	rootCmd.Flags().Int64Var(&runSeed, "seed", 0, "word order seed, 0 picks a random one")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration", &runDuration, fileCfg.Session.DurationSeconds)
	applyStringConfig(cmd, "dict", &runDict, fileCfg.Session.Dict)
	applyIntConfig(cmd, "queue", &runQueue, fileCfg.Session.Queue)
	applyInt64Config(cmd, "seed", &runSeed, fileCfg.Session.Seed)

	cfg := model.Config{
		DurationSeconds: runDuration,
		DictPath:        runDict,
		Queue:           runQueue,
		Seed:            runSeed,
	}
	if cfg.DictPath == "" {
		cfg.DictPath = config.DefaultDictPath()
	}
	if cfg.Queue <= 0 {
		return fmt.Errorf("--queue must be > 0")
	}

	clock, err := session.NewClock(time.Duration(cfg.DurationSeconds) * time.Second)
	if err != nil {
		return fmt.Errorf("--duration %d: %w", cfg.DurationSeconds, err)
	}

	list, err := words.Load(cfg.DictPath)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source, err := words.NewSource(list, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	sess := session.New(source, clock, cfg.Queue)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db, history disabled: %v\n", err)
		st = nil
	}
	defer func() {
		if st == nil {
			return
		}
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	program := tea.NewProgram(tui.NewModel(cfg, st, sess, cfg.DictPath), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
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

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session history",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsWindow, "window", defaultWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain-text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Since:  sinceTime,
		Last:   statsLast,
		Window: statsWindow,
		Plain:  statsPlain,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if cfg.Plain {
		sessions, err := st.ListSessions(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}
		return stats.RenderReport(cmd.OutOrStdout(), sessions, cfg.Window)
	}

	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keydash configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# duration-seconds = %d  # Session length in seconds
# dict = "dict.txt"      # Dictionary file, one word per line
# queue = %d            # Words kept ahead of the cursor
# seed = 0               # Word order seed, 0 picks a random one
`,
		defaultDurationSeconds,
		defaultQueue,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
