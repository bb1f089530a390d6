package media_test

import (
	"testing"

	"github.com/goliatone/go-sitenav/internal/media"
)

func TestClassify(t *testing.T) {
	videos := []string{
		"clips/opening.mp4",
		"archive/session.AVI",
		"a.mov", "b.wmv", "c.flv", "d.webm", "e.mkv",
	}
	for _, p := range videos {
		if got := media.Classify(p); got != media.KindVideo {
			t.Fatalf("expected %q to classify as video, got %q", p, got)
		}
	}

	images := []string{
		"photos/team.jpg",
		"logo.png",
		"scan.pdf",
		"noextension",
		"",
	}
	for _, p := range images {
		if got := media.Classify(p); got != media.KindImage {
			t.Fatalf("expected %q to classify as image, got %q", p, got)
		}
	}
}

func TestResolverPrefixesRelativePaths(t *testing.T) {
	resolver := media.NewResolver("https://files.example.org/media/")

	if got := resolver.Resolve("uploads/photo.jpg"); got != "https://files.example.org/media/uploads/photo.jpg" {
		t.Fatalf("unexpected resolved url %q", got)
	}
	if got := resolver.Resolve("/uploads/photo.jpg"); got != "https://files.example.org/media/uploads/photo.jpg" {
		t.Fatalf("unexpected resolved url for leading slash %q", got)
	}
}

func TestResolverKeepsAbsoluteURLs(t *testing.T) {
	resolver := media.NewResolver("https://files.example.org")

	absolute := "https://cdn.example.org/a.mp4"
	if got := resolver.Resolve(absolute); got != absolute {
		t.Fatalf("expected absolute url unchanged, got %q", got)
	}
	if got := resolver.Resolve("//cdn.example.org/a.jpg"); got != "//cdn.example.org/a.jpg" {
		t.Fatalf("expected protocol-relative url unchanged, got %q", got)
	}
}

func TestResolverWithoutBase(t *testing.T) {
	resolver := media.NewResolver("")
	if got := resolver.Resolve("uploads/photo.jpg"); got != "uploads/photo.jpg" {
		t.Fatalf("expected pass-through without base, got %q", got)
	}
	if got := resolver.Resolve("   "); got != "" {
		t.Fatalf("expected empty for blank path, got %q", got)
	}
}
