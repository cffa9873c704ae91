package compiler

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	codegen "github.com/loto-lang/loto/backend"
	"github.com/loto-lang/loto/common"
	"github.com/loto-lang/loto/frontend"
	"golang.org/x/sync/errgroup"
)

// Project is a directory holding a loto.toml manifest.
type Project struct {
	Root   string
	Config frontend.LotoToml
	// Logger receives one line per emitted file. Nil discards.
	Logger *log.Logger
}

// Output pairs a compiled source with the file written for it.
type Output struct {
	Source string
	Target string
}

func LoadProject(dir string) (*Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	manifestPath := filepath.Join(root, frontend.ManifestName)
	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", frontend.ManifestName, &IOError{Path: manifestPath, Err: err})
	}
	config, err := frontend.HandleLotoToml(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", frontend.ManifestName, err)
	}
	return &Project{Root: root, Config: config}, nil
}

func (p *Project) SrcDir() string {
	return filepath.Join(p.Root, p.Config.Src)
}

func (p *Project) OutDir() string {
	return filepath.Join(p.Root, p.Config.Out)
}

func (p *Project) Options() codegen.Options {
	return codegen.Options{Banner: p.Config.EmitBanner()}
}

func (p *Project) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return p.Logger
}

// Sources lists every .loto file under the source directory, sorted.
func (p *Project) Sources() ([]string, error) {
	var sources []string
	err := filepath.WalkDir(p.SrcDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == SourceExt {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", &IOError{Path: p.SrcDir(), Err: err})
	}
	sort.Strings(sources)
	return sources, nil
}

// Target maps a source under SrcDir to its output path under OutDir,
// keeping the relative directory layout.
func (p *Project) Target(source string) (string, error) {
	rel, err := filepath.Rel(p.SrcDir(), source)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside %s", source, p.SrcDir())
	}
	return filepath.Join(p.OutDir(), common.ReplaceExt(rel, TargetExt)), nil
}

// Check parses every source and returns the first failure.
func (p *Project) Check(ctx context.Context) error {
	sources, err := p.Sources()
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(source)
			if err != nil {
				return &IOError{Path: source, Err: err}
			}
			if _, err := Check(source, string(content)); err != nil {
				return fmt.Errorf("%s: %w", p.rel(source), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Build compiles every source concurrently and writes the results. No
// file is written once any compilation has failed.
func (p *Project) Build(ctx context.Context) ([]Output, error) {
	sources, err := p.Sources()
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := CompileFile(source, p.Options())
			if err != nil {
				return fmt.Errorf("%s: %w", p.rel(source), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outputs := make([]Output, 0, len(results))
	for _, res := range results {
		target, err := p.Target(res.Source)
		if err != nil {
			return outputs, err
		}
		if err := WriteTarget(target, res.JS); err != nil {
			return outputs, err
		}
		p.logger().Printf("compiled %s -> %s", p.rel(res.Source), p.rel(target))
		outputs = append(outputs, Output{Source: res.Source, Target: target})
	}
	return outputs, nil
}

func (p *Project) rel(path string) string {
	if rel, err := filepath.Rel(p.Root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

// WriteTarget writes generated code, creating parent directories.
func WriteTarget(path, js string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(js), 0644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
