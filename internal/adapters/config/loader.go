// Package config provides the configuration loader for assetloader.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.trai.ch/assetloader/internal/core/domain"
	"go.trai.ch/assetloader/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     ports.FileSystem
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load finds assetloader.yaml by walking up from cwd and maps it into a domain.Config.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return l.build(configPath, &file)
}

// DiscoverRoot returns the directory that contains the configuration file.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := l.fs.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) build(configPath string, file *File) (*domain.Config, error) {
	env, err := domain.ParseEnvironmentType(file.Environment)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	root := resolveRoot(configPath, file.Root)
	cfg := &domain.Config{
		Root: root,
		Environment: domain.Environment{
			ScriptDebug: file.ScriptDebug,
			Type:        env,
			Admin:       file.Admin,
		},
		Paths: domain.Paths{
			ContentDir:    resolvePath(root, file.Paths.ContentDir),
			ContentURL:    file.Paths.ContentURL,
			StylesheetDir: resolvePath(root, file.Paths.StylesheetDir),
			StylesheetURL: file.Paths.StylesheetURL,
			TemplateDir:   resolvePath(root, file.Paths.TemplateDir),
			TemplateURL:   file.Paths.TemplateURL,
		},
		Manifests:          make(map[string][]string, len(file.Manifests)),
		BlockAssetKeys:     file.BlockAssetKeys,
		BlockManifestNames: file.BlockManifestNames,
	}

	// A theme without a child theme serves both roles from one directory.
	if cfg.Paths.TemplateDir == "" {
		cfg.Paths.TemplateDir = cfg.Paths.StylesheetDir
		cfg.Paths.TemplateURL = cfg.Paths.StylesheetURL
	}

	for name, candidates := range file.Manifests {
		paths := make([]string, 0, len(candidates))
		for _, c := range candidates {
			paths = append(paths, resolvePath(root, c))
		}
		cfg.Manifests[name] = paths
	}

	for i, dto := range file.Assets {
		if _, ok := cfg.Manifests[dto.Manifest]; !ok {
			err := zerr.With(domain.ErrUnknownManifest, "manifest", dto.Manifest)
			return nil, zerr.With(zerr.With(err, "asset", dto.Asset), "index", i)
		}
		if dto.Asset == "" {
			return nil, zerr.With(domain.ErrEmptyAssetName, "index", i)
		}
		cfg.Assets = append(cfg.Assets, domain.AssetEntry{
			Manifest: dto.Manifest,
			Asset:    dto.Asset,
			Options: domain.Options{
				Handle:       dto.Handle,
				Dependencies: dto.Dependencies,
				InFooter:     dto.InFooter,
				Version:      dto.Version,
			},
			Enqueue: dto.Enqueue,
		})
	}

	for _, b := range file.Blocks {
		cfg.Blocks = append(cfg.Blocks, resolvePath(root, b))
	}

	if len(cfg.Assets) == 0 && len(cfg.Blocks) == 0 {
		l.Logger.Warn(domain.ConfigFileName + " registers no assets or blocks")
	}

	return cfg, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

// resolvePath makes p absolute against base. Empty paths stay empty.
func resolvePath(base, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}
