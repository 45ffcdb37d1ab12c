package judge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlansDefaults(t *testing.T) {
	plans, err := LoadPlans(filepath.Join(t.TempDir(), "langs.toml"))
	if err != nil {
		t.Fatalf("LoadPlans: %v", err)
	}
	for _, ext := range []string{"c", "cpp", "hs", "java", "kt", "py", "rb"} {
		if _, ok := plans[ext]; !ok {
			t.Errorf("missing built-in plan for .%s", ext)
		}
	}
	if plans["py"].Compile != "" {
		t.Error("python must not have a compile step")
	}
	if plans["cpp"].Compile == "" {
		t.Error("c++ must have a compile step")
	}
}

func TestLoadPlansOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "langs.toml")
	content := `
[[lang]]
ext = "cpp"
compile = "g++ -O3 -o {base} {source}"
run = "./{base}"

[[lang]]
ext = "rs"
compile = "rustc -O -o {base} {source}"
run = "./{base}"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	plans, err := LoadPlans(path)
	if err != nil {
		t.Fatalf("LoadPlans: %v", err)
	}
	if plans["cpp"].Compile != "g++ -O3 -o {base} {source}" {
		t.Errorf("cpp override not applied: %q", plans["cpp"].Compile)
	}
	if _, ok := plans["rs"]; !ok {
		t.Error("new extension not added")
	}
	if _, ok := plans["py"]; !ok {
		t.Error("untouched built-ins must survive the overlay")
	}
}

func TestLoadPlansBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langs.toml")
	os.WriteFile(path, []byte("not [valid toml"), 0o644)
	if _, err := LoadPlans(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPlanFor(t *testing.T) {
	plans, _ := LoadPlans(filepath.Join(t.TempDir(), "none.toml"))

	plan, err := PlanFor(plans, "/home/me/sol.cpp")
	if err != nil || plan.Ext != "cpp" {
		t.Errorf("PlanFor cpp: %+v, %v", plan, err)
	}
	if _, err := PlanFor(plans, "sol.exe"); err == nil {
		t.Error("unknown extension must error")
	}
	if _, err := PlanFor(plans, "Makefile"); err == nil {
		t.Error("extension-less file must error")
	}
}

func TestArgvExpansion(t *testing.T) {
	p := Plan{
		Ext:     "cpp",
		Compile: "clang++ -O2 -o {base} {source}",
		Run:     "./{base}",
	}
	argv, err := p.CompileArgv("/tmp/sol.cpp", "sol")
	if err != nil {
		t.Fatalf("CompileArgv: %v", err)
	}
	want := []string{"clang++", "-O2", "-o", "sol", "/tmp/sol.cpp"}
	if len(argv) != len(want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}

	run, err := p.RunArgv("/tmp/sol.cpp", "sol")
	if err != nil || len(run) != 1 || run[0] != "./sol" {
		t.Errorf("RunArgv = %v, %v", run, err)
	}
}

func TestArgvExpansionQuoted(t *testing.T) {
	p := Plan{Ext: "x", Run: `interp --flag "a b" {base}`}
	argv, err := p.RunArgv("src", "prog")
	if err != nil {
		t.Fatalf("RunArgv: %v", err)
	}
	// shlex 按 shell 规则保留带引号的参数
	if len(argv) != 4 || argv[2] != "a b" || argv[3] != "prog" {
		t.Errorf("argv = %v", argv)
	}
}

func TestArgvInterpretedNoCompile(t *testing.T) {
	p := Plan{Ext: "py", Run: "python {base}.py"}
	argv, err := p.CompileArgv("sol.py", "sol")
	if err != nil || argv != nil {
		t.Errorf("CompileArgv = %v, %v, want nil for interpreted", argv, err)
	}
}
