package runner

import (
	"context"
	"os/exec"
	"reflect"
	"strings"
	"testing"
	"time"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not installed", name)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		language string
		want     bool
	}{
		{"python", true},
		{"PYTHON", true},
		{"javascript", true},
		{"go", true},
		{"cobol", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.language); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.language, got, tt.want)
		}
	}
}

func TestLanguagesSorted(t *testing.T) {
	langs := Languages()
	if len(langs) == 0 {
		t.Fatal("no languages registered")
	}
	for i := 1; i < len(langs); i++ {
		if langs[i-1] >= langs[i] {
			t.Errorf("languages not sorted: %v", langs)
		}
	}
}

func TestExpand(t *testing.T) {
	got := expand([]string{"javac", "{file}", "-d", "{dir}"}, "/tmp/x", "/tmp/x/Main.java")
	want := []string{"javac", "/tmp/x/Main.java", "-d", "/tmp/x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expand = %v, want %v", got, want)
	}
}

func TestRunRejectsBadRequests(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	if _, err := r.Run(ctx, Request{Language: "cobol", Code: "x"}); err == nil {
		t.Error("expected error for unsupported language")
	}
	if _, err := r.Run(ctx, Request{Language: "python", Code: "   "}); err == nil {
		t.Error("expected error for empty code")
	}
	if err := r.Preflight("cobol"); err == nil {
		t.Error("expected preflight error for unsupported language")
	}
}

func TestRunPythonOK(t *testing.T) {
	requireTool(t, "python3")
	r := New(nil)

	res, err := r.Run(context.Background(), Request{
		Language: "python",
		Code:     "print('hello')",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Status != StatusOK || res.ExitCode != 0 {
		t.Errorf("result = %+v", res)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Errorf("stdout = %q", res.Stdout)
	}
}

func TestRunPythonError(t *testing.T) {
	requireTool(t, "python3")
	r := New(nil)

	res, err := r.Run(context.Background(), Request{
		Language: "python",
		Code:     "import sys\nsys.exit(3)",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Status != StatusError || res.ExitCode != 3 {
		t.Errorf("result = %+v", res)
	}
}

func TestRunPythonStdin(t *testing.T) {
	requireTool(t, "python3")
	r := New(nil)

	res, err := r.Run(context.Background(), Request{
		Language: "python",
		Code:     "print(input().upper())",
		Stdin:    "abc\n",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "ABC" {
		t.Errorf("stdout = %q", res.Stdout)
	}
}

func TestRunTimeout(t *testing.T) {
	requireTool(t, "python3")
	r := New(nil)

	res, err := r.Run(context.Background(), Request{
		Language: "python",
		Code:     "while True:\n    pass",
		Timeout:  500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Status != StatusTimeout {
		t.Errorf("status = %q, want timeout", res.Status)
	}
	if res.Duration > 5*time.Second {
		t.Errorf("run took %v, deadline not enforced", res.Duration)
	}
}
