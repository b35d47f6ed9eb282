package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) failed: %v", err)
	}
	if !strings.Contains(content, "investment finance calculator") {
		t.Errorf("readme topic is missing its title, got:\n%s", content)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) succeeded, want error")
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	single, err := GetTopic("solver")
	if err != nil {
		t.Fatalf("GetTopic(solver) failed: %v", err)
	}
	if !strings.Contains(all, single) {
		t.Error("GetTopics(*) does not contain the solver topic")
	}
}

// TestTopicsAreWellFormed parses every topic as markdown and checks that
// it opens with a level-1 heading, so the rendered documentation stays
// consistent.
func TestTopicsAreWellFormed(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) failed: %v", topic, err)
		}

		source := []byte(content)
		root := mdParser.Parse(text.NewReader(source))

		first := root.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
		}
	}
}
