// Package runner executes learner code in a subprocess with a hard
// timeout. It shells out to the language's interpreter or compiler on
// PATH; nothing is sandboxed beyond the working directory and the
// deadline, which is acceptable for code the learner wrote themselves.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Status classifies how a run ended.
type Status string

const (
	StatusOK      Status = "ok"
	StatusError   Status = "error"
	StatusTimeout Status = "timeout"
)

// DefaultTimeout bounds a run when the caller does not set one.
const DefaultTimeout = 10 * time.Second

// LangConfig describes how to execute one language. Command argv
// entries containing {file} are replaced with the source path, {dir}
// with the scratch directory.
type LangConfig struct {
	Extension string
	Compile   []string // empty for interpreted languages
	Run       []string
}

// langConfigs maps language identifiers to their execution recipes.
var langConfigs = map[string]LangConfig{
	"python": {
		Extension: ".py",
		Run:       []string{"python3", "{file}"},
	},
	"javascript": {
		Extension: ".js",
		Run:       []string{"node", "{file}"},
	},
	"go": {
		Extension: ".go",
		Run:       []string{"go", "run", "{file}"},
	},
	"java": {
		Extension: ".java",
		Compile:   []string{"javac", "{file}"},
		Run:       []string{"java", "-cp", "{dir}", "Main"},
	},
	"csharp": {
		Extension: ".csx",
		Run:       []string{"dotnet-script", "{file}"},
	},
}

// Languages returns the supported language identifiers, sorted.
func Languages() []string {
	out := make([]string, 0, len(langConfigs))
	for lang := range langConfigs {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Supported reports whether the language has an execution recipe.
func Supported(language string) bool {
	_, ok := langConfigs[strings.ToLower(language)]
	return ok
}

// Result is the outcome of one run.
type Result struct {
	Status   Status
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Request is one piece of code to execute.
type Request struct {
	Language string
	Code     string
	Stdin    string
	Timeout  time.Duration // DefaultTimeout if zero
}

// Runner executes code requests.
type Runner struct {
	log *zap.Logger
}

// New returns a Runner. log may be nil.
func New(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Preflight reports whether the tools needed to run the language are
// installed, returning a descriptive error when they are not.
func (r *Runner) Preflight(language string) error {
	cfg, ok := langConfigs[strings.ToLower(language)]
	if !ok {
		return fmt.Errorf("unsupported language %q (supported: %s)",
			language, strings.Join(Languages(), ", "))
	}

	for _, argv := range [][]string{cfg.Compile, cfg.Run} {
		if len(argv) == 0 {
			continue
		}
		if _, err := exec.LookPath(argv[0]); err != nil {
			return fmt.Errorf("%s is not installed: %w", argv[0], err)
		}
	}
	return nil
}

// Run writes the code to a temp directory, compiles it if the language
// needs that, and executes it under the timeout. A run that exceeds the
// deadline is killed and reported as StatusTimeout; it is never
// retried. The temp directory is always removed.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	lang := strings.ToLower(req.Language)
	cfg, ok := langConfigs[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", req.Language)
	}
	if strings.TrimSpace(req.Code) == "" {
		return nil, errors.New("no code to run")
	}
	if err := r.Preflight(lang); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "codetutor-run-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "main"+cfg.Extension)
	if lang == "java" {
		file = filepath.Join(dir, "Main"+cfg.Extension)
	}
	if err := os.WriteFile(file, []byte(req.Code), 0o600); err != nil {
		return nil, fmt.Errorf("write source file: %w", err)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if len(cfg.Compile) > 0 {
		res, err := r.exec(ctx, dir, expand(cfg.Compile, dir, file), "")
		if err != nil {
			return nil, err
		}
		if res.Status != StatusOK {
			// Compile failures surface as ordinary errors with the
			// compiler's output attached.
			return res, nil
		}
	}

	res, err := r.exec(ctx, dir, expand(cfg.Run, dir, file), req.Stdin)
	if err != nil {
		return nil, err
	}
	r.log.Debug("run finished",
		zap.String("language", lang),
		zap.String("status", string(res.Status)),
		zap.Duration("duration", res.Duration))
	return res, nil
}

func (r *Runner) exec(ctx context.Context, dir string, argv []string, stdin string) (*Result, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		res.Status = StatusTimeout
		res.ExitCode = -1
	case err == nil:
		res.Status = StatusOK
	default:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("start %s: %w", argv[0], err)
		}
		res.Status = StatusError
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}

// expand substitutes the placeholder tokens in an argv template.
func expand(argv []string, dir, file string) []string {
	out := make([]string, len(argv))
	for i, a := range argv {
		a = strings.ReplaceAll(a, "{file}", file)
		a = strings.ReplaceAll(a, "{dir}", dir)
		out[i] = a
	}
	return out
}
