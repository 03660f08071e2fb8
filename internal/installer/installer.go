// Package installer drives the platform-directed prerequisite install
// pipeline: toolchain bootstrap, toolchain update, component add, package
// manager refresh and package install.
package installer

import (
	"context"
	"fmt"
	"runtime"

	"github.com/mycelia-project/mycdev/internal/execx"
	"github.com/mycelia-project/mycdev/internal/logger"
	"github.com/mycelia-project/mycdev/internal/platform"
	mycerrors "github.com/mycelia-project/mycdev/pkg/errors"
)

const (
	// toolchainInstaller manages the Rust toolchain and is expected on
	// PATH once installed.
	toolchainInstaller = "rustup"

	// bootstrapPipeline fetches and runs the rustup installer
	// non-interactively. It is a pipeline, so it needs a shell rather
	// than a straight exec.
	bootstrapPipeline = "curl -sSf https://sh.rustup.rs | sh -s -- -y"
)

// toolchainComponents are added after every toolchain update so lints and
// formatting work out of the box.
var toolchainComponents = []string{"clippy", "rustfmt"}

// Options configures a single install run.
type Options struct {
	// Platform selects the install directive. Empty means the host
	// platform.
	Platform string

	// Root is the directory package-manager commands run in, normally
	// the repository root. Empty means the process working directory.
	Root string

	// DryRun logs each command instead of spawning it. Directive and
	// PATH lookups still happen so the logged plan reflects the host.
	DryRun bool

	// Runner executes subprocesses. Nil means the exec-backed runner.
	Runner execx.Runner

	Logger *logger.Logger
}

// Run installs the prerequisites for the selected platform: it makes sure
// rustup is present (bootstrapping it when missing), updates the toolchain,
// adds the clippy and rustfmt components, refreshes the package manager
// index when the platform has a refresh step, and installs the platform's
// package list. The first failing step aborts the run.
func Run(ctx context.Context, opts Options) error {
	if opts.Platform == "" {
		opts.Platform = runtime.GOOS
	}
	if opts.Runner == nil {
		opts.Runner = execx.CmdRunner{}
	}

	directive, ok := platform.Lookup(opts.Platform)
	if !ok {
		return mycerrors.NewPlatformError(opts.Platform)
	}

	log := opts.Logger.WithFields(map[string]any{
		"platform": opts.Platform,
		"pm":       directive.PackageManager,
	})

	if _, err := opts.Runner.LookPath(directive.PackageManager); err != nil {
		return mycerrors.NewMissingToolError(directive.PackageManager, err)
	}

	if _, err := opts.Runner.LookPath(toolchainInstaller); err != nil {
		log.Info("installing rustup")
		if err := bootstrapToolchain(ctx, opts, log); err != nil {
			return fmt.Errorf("install %s: %w", toolchainInstaller, err)
		}
	}

	log.Info("updating rustup")
	if err := runStep(ctx, opts, log, []string{toolchainInstaller, "update"}, ""); err != nil {
		return err
	}

	log.Info("installing rustup components")
	componentAdd := append([]string{toolchainInstaller, "component", "add"}, toolchainComponents...)
	if err := runStep(ctx, opts, log, componentAdd, ""); err != nil {
		return err
	}

	if len(directive.Setup) > 0 {
		log.Info("updating package manager")
		if err := runStep(ctx, opts, log, directive.Setup, opts.Root); err != nil {
			return err
		}
	}

	log.WithFields(map[string]any{"packages": directive.Packages}).Info("installing packages")
	return runStep(ctx, opts, log, directive.InstallArgv(), opts.Root)
}

// bootstrapToolchain runs the rustup installer through the host shell.
func bootstrapToolchain(ctx context.Context, opts Options, log *logger.Logger) error {
	if opts.DryRun {
		log.WithFields(map[string]any{"cmd": bootstrapPipeline}).Info("dry-run: command not executed")
		return nil
	}

	shell, err := resolveShell(opts.Runner)
	if err != nil {
		return err
	}
	return runStep(ctx, opts, log, append(shell, bootstrapPipeline), "")
}

// resolveShell finds the shell invocation used for pipeline commands.
func resolveShell(r execx.Runner) ([]string, error) {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}, nil
	}

	for _, name := range []string{"bash", "sh"} {
		if path, err := r.LookPath(name); err == nil {
			return []string{path, "-c"}, nil
		}
	}

	return nil, fmt.Errorf("no suitable shell found for the rustup bootstrap")
}

// runStep executes one pipeline command, turning any failure into a
// CommandError carrying the exit code and the command's primary output.
func runStep(ctx context.Context, opts Options, log *logger.Logger, argv []string, dir string) error {
	rendered := platform.Render(argv)
	if opts.DryRun {
		log.WithFields(map[string]any{"cmd": rendered}).Info("dry-run: command not executed")
		return nil
	}

	log.WithFields(map[string]any{"cmd": rendered}).Debug("running command")
	res, err := opts.Runner.Run(ctx, argv[0], argv[1:], execx.RunOptions{Dir: dir})
	if err != nil {
		return mycerrors.NewCommandError(argv, execx.ExitCode(err), execx.PrimaryOutput(res), err)
	}
	return nil
}
