package responder

import "testing"

func TestSelectKeywordCategories(t *testing.T) {
	cases := []struct {
		message string
		want    Category
	}{
		{"What skills do you have?", Skills},
		{"Which TECHNOLOGY stack?", Skills},
		{"fintech", Skills},
		{"Show me a project", Projects},
		{"Where did he work before?", Projects},
		{"PORTFOLIO link", Projects},
		{"How much experience?", Experience},
		{"Tell me about his background", Experience},
		{"career path", Experience},
		{"How can I contact him?", Contact},
		{"Can I hire Mohamed?", Contact},
		{"What is his EMAIL", Contact},
		{"Which service do you sell?", Services},
		{"What do you offer?", Services},
		{"I need help", Services},
		{"banana", Default},
		{"", Default},
		{"   ", Default},
		{"héllo ✨", Default},
		{"SKİLL", Default},
	}

	for _, tc := range cases {
		if got := Select(tc.message); got != tc.want {
			t.Fatalf("Select(%q) = %s, want %s", tc.message, got, tc.want)
		}
	}
}

func TestSelectFirstMatchWins(t *testing.T) {
	if got := Select("Can you tell me about your skills and projects?"); got != Skills {
		t.Fatalf("expected skills, got %s", got)
	}
	// "network" contains "work", which outranks "contact".
	if got := Select("contact me about network"); got != Projects {
		t.Fatalf("expected projects, got %s", got)
	}
	if got := Select("I need help with my career"); got != Experience {
		t.Fatalf("expected experience, got %s", got)
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	msg := "Do you offer hosting services?"
	first := Select(msg)
	for i := 0; i < 5; i++ {
		if got := Select(msg); got != first {
			t.Fatalf("call %d returned %s, first call returned %s", i, got, first)
		}
	}
}

func TestReplyCoversEveryCategory(t *testing.T) {
	seen := make(map[string]Category)
	for _, c := range Categories() {
		text := Reply(c)
		if text == "" {
			t.Fatalf("empty reply for %s", c)
		}
		if other, dup := seen[text]; dup {
			t.Fatalf("categories %s and %s share a reply", c, other)
		}
		seen[text] = c
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct replies, got %d", len(seen))
	}
}

func TestReplyUnknownCategoryFallsBack(t *testing.T) {
	if Reply(Category("weather")) != Reply(Default) {
		t.Fatal("expected unknown category to use the default reply")
	}
}
