package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/dot/internal/log"
)

const (
	// DefaultSuffix is used when no source provides a suffix.
	DefaultSuffix = "BECAUSE I WORSHIP THE DOT"

	// EnvSuffix overrides every file source when set and non-blank.
	EnvSuffix = "DOT_WORSHIP_SUFFIX"

	// FileName is the suffix config file looked up in cwd and home.
	FileName = ".dot.ini"
)

// ResolvedSuffix is the effective suffix and where it came from.
// Value is never empty.
type ResolvedSuffix struct {
	Value  string `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"` // set for file sources
}

// Candidate is a config file location consulted during resolution.
type Candidate struct {
	Source Source `json:"source" yaml:"source"`
	Path   string `json:"path" yaml:"path"`
}

// Resolver resolves the worship suffix from the environment, the working
// directory, the home directory and the built-in default.
// All fields must be set; see NewResolver.
type Resolver struct {
	LookupEnv func(key string) (string, bool)
	ReadFile  func(name string) ([]byte, error)
	Getwd     func() (string, error)
	HomeDir   func() (string, error)
}

// NewResolver returns a Resolver backed by the running process.
func NewResolver() *Resolver {
	return &Resolver{
		LookupEnv: os.LookupEnv,
		ReadFile:  os.ReadFile,
		Getwd:     os.Getwd,
		HomeDir:   os.UserHomeDir,
	}
}

// Candidates returns the config file locations in lookup order.
// Locations whose directory cannot be determined are left out.
func (r *Resolver) Candidates() []Candidate {
	var out []Candidate
	if wd, err := r.Getwd(); err == nil && wd != "" {
		out = append(out, Candidate{Source: SourceCwd, Path: filepath.Join(wd, FileName)})
	}
	if home, err := r.HomeDir(); err == nil && home != "" {
		out = append(out, Candidate{Source: SourceHome, Path: filepath.Join(home, FileName)})
	}
	return out
}

// Resolve returns the effective suffix. It never fails: unreadable or
// unparseable sources are skipped and the default is the last resort.
// Nothing is cached; every call re-reads environment and files.
func (r *Resolver) Resolve(ctx context.Context) ResolvedSuffix {
	l := log.FromContext(ctx)

	if v, ok := r.LookupEnv(EnvSuffix); ok {
		if v = strings.TrimSpace(v); v != "" {
			l.Debug("suffix resolved", "source", SourceEnv)
			return ResolvedSuffix{Value: v, Source: SourceEnv}
		}
		l.Debug("skipping suffix source", "source", SourceEnv, "reason", "blank")
	}

	for _, c := range r.Candidates() {
		data, err := r.ReadFile(c.Path)
		if err != nil {
			l.Debug("skipping suffix source", "source", c.Source, "path", c.Path, "reason", err)
			continue
		}
		v, ok := ExtractSuffix(string(data))
		if !ok {
			l.Debug("skipping suffix source", "source", c.Source, "path", c.Path, "reason", "no "+Key+" in ["+Section+"]")
			continue
		}
		l.Debug("suffix resolved", "source", c.Source, "path", c.Path)
		return ResolvedSuffix{Value: v, Source: c.Source, Path: c.Path}
	}

	l.Debug("suffix resolved", "source", SourceDefault)
	return ResolvedSuffix{Value: DefaultSuffix, Source: SourceDefault}
}

type resolverKey struct{}

// WithResolver returns a new context with the Resolver stored in it.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

// ResolverFromContext returns the Resolver from context.
// Falls back to an OS-backed resolver when none is stored.
func ResolverFromContext(ctx context.Context) *Resolver {
	if r, ok := ctx.Value(resolverKey{}).(*Resolver); ok {
		return r
	}
	return NewResolver()
}
