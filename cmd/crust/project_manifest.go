package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/cooldudemcgeexl/crust/internal/driver"
)

const (
	manifestName       = "crust.toml"
	noCrustTomlMessage = "no crust.toml found\nplease specify the input explicitly, e.g.:\n  crust parse path/to/main.src"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package     packageConfig     `toml:"package"`
	Build       buildConfig       `toml:"build"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type buildConfig struct {
	Main string `toml:"main"`
}

type diagnosticsConfig struct {
	Max int `toml:"max"`
}

func findCrustToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findCrustToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("build", "main") || strings.TrimSpace(cfg.Build.Main) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [build].main", path)
	}
	if cfg.Diagnostics.Max < 0 {
		return projectConfig{}, fmt.Errorf("%s: [diagnostics].max must be >= 0", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return projectConfig{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// mainPath resolves [build].main against the manifest directory.
func (m *projectManifest) mainPath() (string, error) {
	mainPath := filepath.Join(m.Root, filepath.FromSlash(strings.TrimSpace(m.Config.Build.Main)))
	info, err := os.Stat(mainPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [build].main path does not exist: %s", m.Path, mainPath)
		}
		return "", fmt.Errorf("%s: failed to stat [build].main: %w", m.Path, err)
	}
	if !info.IsDir() && filepath.Ext(mainPath) != driver.SourceExt {
		return "", fmt.Errorf("%s: [build].main must be a %s file or directory", m.Path, driver.SourceExt)
	}
	return mainPath, nil
}

// resolveInput returns the path to process: the argument if given, else
// [build].main of the nearest crust.toml. A manifest also supplies
// [diagnostics].max unless --max-diagnostics was set.
func resolveInput(cmd *cobra.Command, args []string, g *globalOptions) (string, error) {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			startDir = filepath.Dir(args[0])
		}
	}
	manifest, found, err := loadProjectManifest(startDir)
	if err != nil {
		return "", err
	}
	if found && manifest.Config.Diagnostics.Max > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		g.maxDiagnostics = manifest.Config.Diagnostics.Max
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if !found {
		return "", errors.New(noCrustTomlMessage)
	}
	return manifest.mainPath()
}
