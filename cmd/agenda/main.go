package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/agenda"
	"github.com/smileynet/agenda/internal/config"
	"github.com/smileynet/agenda/internal/dashboard"
	"github.com/smileynet/agenda/internal/logging"
	"github.com/smileynet/agenda/internal/profile"
	"github.com/smileynet/agenda/internal/registry"
	"github.com/smileynet/agenda/internal/render"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config  string `help:"Config file layered over the user and project config." type:"path" placeholder:"FILE"`
	Verbose bool   `help:"Log at debug level." short:"v"`
}

// CLI is the top-level command structure for agenda.
type CLI struct {
	Globals

	Version    kong.VersionFlag `help:"Show version." short:"V"`
	Dashboard  DashboardCmd     `cmd:"" default:"1" help:"Open the interactive dashboard (default)."`
	Profiles   ProfilesCmd      `cmd:"" help:"List profiles."`
	Contacts   ContactsCmd      `cmd:"" help:"List the contacts of a profile."`
	Duplicates DuplicatesCmd    `cmd:"" help:"Report contacts of a profile that share a phone."`
	Import     ImportCmd        `cmd:"" help:"Import contacts from another profile."`
	Export     ExportCmd        `cmd:"" help:"Export contacts to another profile."`
}

// loadConfig reads .env, then user, project, and explicit config layers,
// then applies AGENDA_* environment overrides. Only the explicit file must exist.
func loadConfig(explicit string) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.Load(explicit,
		os.ExpandEnv("$HOME/.config/agenda/config.yaml"),
		".agenda/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session holds what every command needs: config, logger, and the seeded registry.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	reg    *registry.Registry
}

func openSession(g *Globals) (*session, error) {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log, g.Verbose)
	if err != nil {
		return nil, err
	}
	reg, err := registry.Load(agenda.SeedFS(cfg.Seed.Dir), registry.WithLogger(logger))
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Debug("session opened",
		zap.String("seed_dir", cfg.Seed.Dir),
		zap.Int("profiles", reg.Len()),
	)
	return &session{cfg: cfg, logger: logger, reg: reg}, nil
}

// Close releases every profile and flushes the logger.
func (s *session) Close() {
	s.reg.Close()
	_ = s.logger.Sync()
}

// withSession opens a session, runs fn against stdout, and closes it.
func withSession(g *Globals, name string, fn func(w io.Writer, reg *registry.Registry) error) error {
	s, err := openSession(g)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	defer s.Close()
	return fn(os.Stdout, s.reg)
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// DashboardCmd opens the interactive dashboard.
type DashboardCmd struct{}

// Run launches the dashboard, or prints the profile list when stdout is not
// a terminal or plain output is configured.
func (d *DashboardCmd) Run(g *Globals) error {
	s, err := openSession(g)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	defer s.Close()

	fd := os.Stdout.Fd()
	interactive := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && !s.cfg.Display.Plain

	m := dashboard.NewModel(s.reg, dashboard.WithLogger(s.logger))
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return d.run(os.Stdout, s.reg, interactive, prog)
}

// run executes the tea program, enabling testable wiring.
func (d *DashboardCmd) run(w io.Writer, reg *registry.Registry, interactive bool, prog teaRunner) error {
	if !interactive {
		printProfiles(w, reg)
		return nil
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// ProfilesCmd lists the registry.
type ProfilesCmd struct{}

// Run executes the profiles command.
func (c *ProfilesCmd) Run(g *Globals) error {
	return withSession(g, "profiles", func(w io.Writer, reg *registry.Registry) error {
		printProfiles(w, reg)
		return nil
	})
}

func printProfiles(w io.Writer, reg *registry.Registry) {
	for i, p := range reg.All() {
		_, _ = fmt.Fprintln(w, render.ProfileLine(i, p))
	}
}

// ContactsCmd lists one profile's contacts.
type ContactsCmd struct {
	Username string `arg:"" help:"Profile to list."`
}

// Run executes the contacts command.
func (c *ContactsCmd) Run(g *Globals) error {
	return withSession(g, "contacts", c.run)
}

func (c *ContactsCmd) run(w io.Writer, reg *registry.Registry) error {
	p, _, err := reg.Lookup(c.Username)
	if err != nil {
		return fmt.Errorf("contacts: %w", err)
	}
	_, _ = fmt.Fprintln(w, render.ContactTable(p))
	return nil
}

// DuplicatesCmd reports contacts sharing a phone within one profile.
type DuplicatesCmd struct {
	Username string `arg:"" help:"Profile to scan."`
}

// Run executes the duplicates command.
func (c *DuplicatesCmd) Run(g *Globals) error {
	return withSession(g, "duplicates", c.run)
}

func (c *DuplicatesCmd) run(w io.Writer, reg *registry.Registry) error {
	p, _, err := reg.Lookup(c.Username)
	if err != nil {
		return fmt.Errorf("duplicates: %w", err)
	}
	printLines(w, render.Duplicates(p.Username(), p.DetectDuplicates()))
	return nil
}

// ImportCmd merges the contacts of Source into Dest.
type ImportCmd struct {
	Dest   string `arg:"" help:"Profile receiving the contacts."`
	Source string `arg:"" help:"Profile the contacts are copied from."`
}

// Run executes the import command.
func (c *ImportCmd) Run(g *Globals) error {
	return withSession(g, "import", c.run)
}

func (c *ImportCmd) run(w io.Writer, reg *registry.Registry) error {
	dst, src, err := lookupPair(reg, c.Dest, c.Source)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	res := dst.ImportFrom(src)
	printMerge(w, src, dst, res)
	return nil
}

// ExportCmd copies the contacts of Source into Dest.
type ExportCmd struct {
	Source string `arg:"" help:"Profile the contacts are copied from."`
	Dest   string `arg:"" help:"Profile receiving the contacts."`
}

// Run executes the export command.
func (c *ExportCmd) Run(g *Globals) error {
	return withSession(g, "export", c.run)
}

func (c *ExportCmd) run(w io.Writer, reg *registry.Registry) error {
	dst, src, err := lookupPair(reg, c.Dest, c.Source)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	res := profile.Export(src, dst)
	printMerge(w, src, dst, res)
	return nil
}

func lookupPair(reg *registry.Registry, dest, source string) (dst, src *profile.Profile, err error) {
	if dst, _, err = reg.Lookup(dest); err != nil {
		return nil, nil, err
	}
	if src, _, err = reg.Lookup(source); err != nil {
		return nil, nil, err
	}
	return dst, src, nil
}

func printMerge(w io.Writer, src, dst *profile.Profile, res profile.ImportResult) {
	printLines(w, render.ImportSummary(src.Username(), dst.Username(), res))
	_, _ = fmt.Fprintln(w, render.ContactTable(dst))
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}

// Exit codes.
const (
	exitSuccess  = 0
	exitNotFound = 1
	exitSetup    = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, registry.ErrProfileNotFound) {
		return exitNotFound
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("agenda"),
		kong.Description("Contact agendas for a handful of profiles."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
