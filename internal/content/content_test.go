package content

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const validDoc = `{
  "language": "python",
  "name": "Python",
  "description": "Learn Python from scratch",
  "level": "beginner",
  "topics": [
    {
      "id": "basics",
      "title": "Python Basics",
      "content": "Variables and types.",
      "order": 1,
      "estimated_minutes": 30,
      "subtopics": [
        {"id": "variables", "title": "Variables", "content": "x = 1"}
      ],
      "examples": [
        {"title": "Hello", "code": "print('hello')", "output": "hello"}
      ],
      "exercises": [
        {"id": "ex1", "title": "Greet", "description": "Print a greeting", "points": 10}
      ],
      "quiz": {
        "passing_score": 70,
        "questions": [
          {
            "id": "q1",
            "prompt": "Which keyword defines a function?",
            "type": "multiple_choice",
            "options": ["func", "def", "fn"],
            "answer": 2,
            "points": 2
          },
          {
            "id": "q2",
            "prompt": "Complete: ___('hi')",
            "type": "code_completion",
            "answer_text": "print"
          }
        ]
      }
    },
    {
      "id": "functions",
      "title": "Functions",
      "content": "Defining functions.",
      "order": 2
    }
  ]
}`

func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFileValid(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "python.json", validDoc)

	tut, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tut.Language != "python" || tut.Name != "Python" {
		t.Errorf("tutorial header = %q/%q", tut.Language, tut.Name)
	}
	if len(tut.Topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(tut.Topics))
	}

	topic := tut.Topic("basics")
	if topic == nil {
		t.Fatal("topic basics not found")
	}
	if topic.Quiz == nil || len(topic.Quiz.Questions) != 2 {
		t.Fatalf("quiz not loaded: %+v", topic.Quiz)
	}

	opt, ok := topic.Quiz.Questions[0].CorrectOption()
	if !ok || opt != "def" {
		t.Errorf("correct option = %q, %v", opt, ok)
	}
	if got := topic.Quiz.TotalPoints(); got != 3 {
		t.Errorf("total points = %v, want 3", got)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "python.json", validDoc)

	first, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Serializing a loaded tutorial and loading it again must yield
	// the same value.
	out, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again := writeDoc(t, dir, "again.json", string(out))
	second, err := LoadFile(again)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("round-tripped tutorial differs from original")
	}
}

func TestLoadFileRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "not json",
			doc:     "{nope",
			wantMsg: "invalid JSON",
		},
		{
			name:    "missing required fields",
			doc:     `{"language": "python", "topics": []}`,
			wantMsg: "schema validation failed",
		},
		{
			name: "zero passing score",
			doc: `{
				"language": "python", "name": "Python",
				"topics": [{
					"id": "t1", "title": "T", "content": "c",
					"quiz": {"passing_score": 0, "questions": [{
						"id": "q1", "prompt": "p", "type": "true_false",
						"options": ["True", "False"], "answer": 1
					}]}
				}]
			}`,
			wantMsg: "schema validation failed",
		},
		{
			name: "answer out of range",
			doc: `{
				"language": "python", "name": "Python",
				"topics": [{
					"id": "t1", "title": "T", "content": "c",
					"quiz": {"questions": [{
						"id": "q1", "prompt": "p", "type": "multiple_choice",
						"options": ["a", "b"], "answer": 3
					}]}
				}]
			}`,
			wantMsg: "does not reference an option",
		},
		{
			name: "text question without answer",
			doc: `{
				"language": "python", "name": "Python",
				"topics": [{
					"id": "t1", "title": "T", "content": "c",
					"quiz": {"questions": [{
						"id": "q1", "prompt": "p", "type": "fill_blank"
					}]}
				}]
			}`,
			wantMsg: "require answer_text",
		},
		{
			name: "duplicate topic ids",
			doc: `{
				"language": "python", "name": "Python",
				"topics": [
					{"id": "t1", "title": "A", "content": "a"},
					{"id": "t1", "title": "B", "content": "b"}
				]
			}`,
			wantMsg: "duplicate topic ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeDoc(t, dir, "bad.json", tt.doc)

			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error type = %T, want *FormatError", err)
			}
			if fe.File != path {
				t.Errorf("error names %q, want %q", fe.File, path)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "python.json", validDoc)
	writeDoc(t, dir, "notes.txt", "ignored")
	writeDoc(t, dir, "javascript.json", `{
		"language": "javascript", "name": "JavaScript",
		"topics": [{"id": "intro", "title": "Intro", "content": "JS closures and scope."}]
	}`)

	lib, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}

	if got := lib.Languages(); !reflect.DeepEqual(got, []string{"javascript", "python"}) {
		t.Errorf("languages = %v", got)
	}
	if lib.Tutorial("python") == nil {
		t.Error("python tutorial missing")
	}
	if lib.Topic("python", "basics") == nil {
		t.Error("python/basics lookup failed")
	}
	if lib.Topic("python", "nope") != nil {
		t.Error("expected nil for unknown topic")
	}
	if lib.TopicCount("python") != 2 {
		t.Errorf("topic count = %d, want 2", lib.TopicCount("python"))
	}
}

func TestLoadDirRejectsDuplicateLanguage(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.json", validDoc)
	writeDoc(t, dir, "b.json", validDoc)

	_, err := LoadDir(dir)
	if err == nil {
		t.Fatal("expected duplicate-language error")
	}
	if !strings.Contains(err.Error(), "already loaded") {
		t.Errorf("error = %q", err)
	}
}

func TestLibrarySearch(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "python.json", validDoc)
	writeDoc(t, dir, "javascript.json", `{
		"language": "javascript", "name": "JavaScript",
		"topics": [{"id": "intro", "title": "Intro", "content": "JS closures and scope."}]
	}`)

	lib, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"FUNCTIONS", 1}, // case-insensitive title match
		{"closures", 1},  // body match
		{"variables", 1}, // subtopic match
		{"", 0},
		{"quantum", 0},
	}
	for _, tt := range tests {
		if got := lib.Search(tt.query); len(got) != tt.want {
			t.Errorf("search %q = %d results, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestOrderedTopics(t *testing.T) {
	tut := &Tutorial{Topics: []Topic{
		{ID: "c", Order: 3},
		{ID: "a", Order: 1},
		{ID: "b", Order: 2},
	}}

	ordered := tut.OrderedTopics()
	got := []string{ordered[0].ID, ordered[1].ID, ordered[2].ID}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("ordered topics = %v", got)
	}
}
