package dataset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/topiclass/post-classifier/pkg/classifier"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) []classifier.Post {
	t.Helper()
	var posts []classifier.Post
	for {
		post, err := r.Next()
		if errors.Is(err, io.EOF) {
			return posts
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		posts = append(posts, post)
	}
}

func TestReaderFileOrder(t *testing.T) {
	path := writeTempCSV(t, "tag,content\nmath,x y\ncs,y z\nmath,w\n")

	r, err := Open(path, "", "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	posts := readAll(t, r)
	expected := []classifier.Post{
		{Label: "math", Content: "x y"},
		{Label: "cs", Content: "y z"},
		{Label: "math", Content: "w"},
	}
	if len(posts) != len(expected) {
		t.Fatalf("read %d posts, expected %d", len(posts), len(expected))
	}
	for i := range expected {
		if posts[i] != expected[i] {
			t.Errorf("post %d = %+v, expected %+v", i, posts[i], expected[i])
		}
	}
}

func TestReaderIgnoresExtraColumns(t *testing.T) {
	path := writeTempCSV(t, "id,tag,author,content\n1,math,alice,x y\n2,cs,bob,z\n")

	r, err := Open(path, "", "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	posts := readAll(t, r)
	if len(posts) != 2 {
		t.Fatalf("read %d posts, expected 2", len(posts))
	}
	if posts[0].Label != "math" || posts[0].Content != "x y" {
		t.Errorf("post 0 = %+v, expected label math content \"x y\"", posts[0])
	}
}

func TestReaderQuotedContent(t *testing.T) {
	path := writeTempCSV(t, "tag,content\nmath,\"x, y and z\"\n")

	r, err := Open(path, "", "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	posts := readAll(t, r)
	if len(posts) != 1 {
		t.Fatalf("read %d posts, expected 1", len(posts))
	}
	if posts[0].Content != "x, y and z" {
		t.Errorf("Content = %q, expected quoted field with comma intact", posts[0].Content)
	}
}

func TestReaderCustomColumns(t *testing.T) {
	path := writeTempCSV(t, "label,text\nspam,free money\n")

	r, err := Open(path, "label", "text")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	posts := readAll(t, r)
	if len(posts) != 1 || posts[0].Label != "spam" || posts[0].Content != "free money" {
		t.Errorf("posts = %+v, expected one spam/free money record", posts)
	}
}

func TestReaderMissingColumns(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{"missing tag", "id,content\n1,x\n"},
		{"missing content", "tag,body\nmath,x\n"},
		{"missing both", "a,b\n1,2\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempCSV(t, tc.header)
			if _, err := Open(path, "", ""); err == nil {
				t.Error("expected error for missing column, got nil")
			}
		})
	}
}

func TestReaderRaggedRow(t *testing.T) {
	path := writeTempCSV(t, "tag,content\nmath,x y\nonly-one-field\n")

	r, err := Open(path, "", "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	if _, err := r.Next(); err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if _, err := r.Next(); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("expected a malformed-record error, got %v", err)
	}
}

func TestReaderSameColumnTwice(t *testing.T) {
	path := writeTempCSV(t, "tag,content\nmath,x\n")

	if _, err := Open(path, "tag", "tag"); err == nil {
		t.Error("expected error when tag and content name the same column")
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.csv"), "", ""); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
