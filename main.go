package main

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"pulse/internal/config"
	"pulse/internal/gitinfo"
	"pulse/internal/install"
	"pulse/internal/prompt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "pulse-prompt",
		Repository: "pulse",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/pulse-prompt/pulse/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pulse [options]\n\n")
		fmt.Fprintf(os.Stderr, "pulse is a fast, configurable PS1 prompt engine for modern shells.\n")
		fmt.Fprintf(os.Stderr, "It renders your working directory, Git state, and last exit code\n")
		fmt.Fprintf(os.Stderr, "as a colored prompt string on stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pulse               # Render the prompt (dual-line by default)\n")
		fmt.Fprintf(os.Stderr, "  pulse --inline      # Render a single-line prompt\n")
		fmt.Fprintf(os.Stderr, "  pulse --install     # Wire pulse into your shell rc file\n")
	}

	configFlag := pflag.StringP("config", "c", "", "Path to custom configuration file")
	inlineFlag := pflag.Bool("inline", false, "Use inline mode instead of dual-line")
	installFlag := pflag.Bool("install", false, "Install pulse to shell configuration")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("pulse version %s\n", Version)
		return
	}

	if *updateFlag {
		checkUpdate(Version)
		return
	}

	logger := newLogger()
	defer logger.Sync()

	if *installFlag {
		runInstall()
		return
	}

	cfg, err := config.Load(*configFlag, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	mode := cfg.Mode
	if *inlineFlag {
		mode = prompt.Inline
	}

	facts := gatherFacts(logger)

	r := lipgloss.NewRenderer(os.Stdout)
	// Prompt substitution runs without a TTY; emit escapes regardless.
	r.SetColorProfile(termenv.TrueColor)

	fmt.Print(prompt.Generate(cfg.Segments, mode, facts, r))
}

func runInstall() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	sh := install.DetectShell(os.Getenv("SHELL"))
	rcPath := sh.RCFile(home)

	if install.IsInstalled(rcPath) {
		fmt.Printf("Pulse is already installed in %s\n", rcPath)
		fmt.Println("Replacing existing installation...")
	}

	if _, err := install.Install(home, sh); err != nil {
		fmt.Fprintf(os.Stderr, "Error installing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Pulse has been installed to %s\n", rcPath)
	fmt.Printf("Please restart your shell or run 'source %s' to apply changes.\n", rcPath)
}

// gatherFacts collects everything the rendering core consumes: working
// directory, identity, repository state, exit code, terminal width.
// The core itself never touches the environment.
func gatherFacts(logger *zap.Logger) prompt.Facts {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Debug("cwd unavailable", zap.Error(err))
		cwd = "/"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	repo, _ := gitinfo.New(logger).Inspect(cwd)

	facts := prompt.Facts{
		Username: username(),
		Hostname: hostname(),
		Path:     prompt.Condense(cwd, home),
		Repo:     repo,
		ExitCode: exitCode(),
		Root:     os.Geteuid() == 0,
	}

	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		facts.TermWidth = w
	}

	return facts
}

func username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return ""
	}
	return h
}

// exitCode reads the previous command's status. PIPESTATUS takes
// precedence over LAST_EXIT_CODE; anything unparseable counts as 0.
func exitCode() int {
	for _, key := range []string{"PIPESTATUS", "LAST_EXIT_CODE"} {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			continue
		}
		// Bash exports PIPESTATUS as a space-separated list; the first
		// entry is the status that matters for the prompt.
		if fields := strings.Fields(v); len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil {
				return n
			}
		}
	}
	return 0
}

func newLogger() *zap.Logger {
	if os.Getenv("PULSE_DEBUG") == "" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
