package judge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/pelletier/go-toml/v2"
)

// Plan describes how one language is built and run. Command templates use
// {source} for the solution path and {base} for its extension-less basename;
// an empty Compile means an interpreted language.
type Plan struct {
	Ext     string
	Compile string
	Run     string
}

// Built-in language table, keyed by source file extension. A langs.toml in
// the cache root can override or extend entries.
var defaultPlans = map[string]Plan{
	"c":    {Ext: "c", Compile: "gcc -static -DONLINE_JUDGE -fno-asm -lm -s -O2 -o {base} {source}", Run: "./{base}"},
	"cpp":  {Ext: "cpp", Compile: "clang++ -DONLINE_JUDGE -O2 -std=c++17 -o {base} {source}", Run: "./{base}"},
	"hs":   {Ext: "hs", Compile: "ghc --make -O -dynamic -o {base} {source}", Run: "./{base}"},
	"java": {Ext: "java", Compile: "javac -d . {source}", Run: "java -DONLINE_JUDGE=true -Duser.language=en -Duser.region=US -Duser.variant=US {base}"},
	"kt":   {Ext: "kt", Compile: "kotlinc -d . {source}", Run: "kotlin -DONLINE_JUDGE=true -Duser.language=en -Duser.region=US -Duser.variant=US {base}Kt"},
	"py":   {Ext: "py", Run: "python {base}.py"},
	"rb":   {Ext: "rb", Run: "ruby {base}.rb"},
}

type planConfig struct {
	Lang []Plan `toml:"lang"`
}

// LoadPlans returns the built-in table overlaid with the optional TOML file
// at path. A missing file is not an error.
func LoadPlans(path string) (map[string]Plan, error) {
	plans := make(map[string]Plan, len(defaultPlans))
	for ext, p := range defaultPlans {
		plans[ext] = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return plans, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg planConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, p := range cfg.Lang {
		if p.Ext != "" {
			plans[p.Ext] = p
		}
	}
	return plans, nil
}

// PlanFor resolves the plan for a source file from its extension.
func PlanFor(plans map[string]Plan, sourcePath string) (Plan, error) {
	ext := strings.TrimPrefix(filepath.Ext(sourcePath), ".")
	plan, ok := plans[ext]
	if !ok {
		return Plan{}, fmt.Errorf("unsupported source extension %q", ext)
	}
	return plan, nil
}

// CompileArgv expands the compile template into an argv. Empty when the
// language needs no compilation.
func (p Plan) CompileArgv(source, base string) ([]string, error) {
	if p.Compile == "" {
		return nil, nil
	}
	return expandArgv(p.Compile, source, base)
}

// RunArgv expands the run template into an argv.
func (p Plan) RunArgv(source, base string) ([]string, error) {
	return expandArgv(p.Run, source, base)
}

func expandArgv(tpl, source, base string) ([]string, error) {
	expanded := strings.NewReplacer("{source}", source, "{base}", base).Replace(tpl)
	argv, err := shlex.Split(expanded)
	if err != nil {
		return nil, fmt.Errorf("split command %q: %w", expanded, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command after expansion: %q", tpl)
	}
	return argv, nil
}
