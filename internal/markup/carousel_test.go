package markup

import (
	"context"
	"strings"
	"testing"

	"finecode/internal/carousel"
)

func render(t *testing.T, f carousel.Frame) string {
	t.Helper()
	var b strings.Builder
	if err := Carousel(f).Render(context.Background(), &b); err != nil {
		t.Fatalf("Carousel() = %v", err)
	}
	return b.String()
}

func TestCarouselRendersNothingWhenEmpty(t *testing.T) {
	if got := render(t, carousel.Render(nil, "x", carousel.Snapshot{})); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestCarouselMarkup(t *testing.T) {
	f := carousel.Render([]string{"a.png", "b.png", "c.png"}, "Shop", carousel.Snapshot{Index: 2})
	got := render(t, f)

	for _, want := range []string{
		`<div class="carousel-container" data-enter="pause" data-leave="resume">`,
		`<button class="carousel-button prev" aria-label="Previous image" data-intent="prev">`,
		`<img src="c.png" alt="Shop screenshot 3" class="carousel-image">`,
		`<button class="carousel-button next" aria-label="Next image" data-intent="next">`,
		`<span class="indicator" aria-label="Go to image 1" data-intent="jump" data-index="0"></span>`,
		`<span class="indicator active" aria-label="Go to image 3" data-intent="jump" data-index="2"></span>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %q", want, got)
		}
	}
	if n := strings.Count(got, `class="indicator`); n != 3 {
		t.Fatalf("expected 3 indicators, got %d", n)
	}
	if strings.Contains(got, "data-paused") {
		t.Fatalf("playing carousel should not be marked paused: %q", got)
	}
}

func TestCarouselEscapesReferences(t *testing.T) {
	f := carousel.Render([]string{`x.png"><script>`}, `<b>Title</b>`, carousel.Snapshot{})
	got := render(t, f)
	if strings.Contains(got, "<script>") || strings.Contains(got, "<b>") {
		t.Fatalf("expected escaped output, got %q", got)
	}
}

func TestCarouselMarksPaused(t *testing.T) {
	f := carousel.Render([]string{"a"}, "", carousel.Snapshot{Paused: true, State: carousel.StatePaused})
	if got := render(t, f); !strings.Contains(got, `data-paused="true"`) {
		t.Fatalf("expected paused marker, got %q", got)
	}
}

func TestPageWrapsBody(t *testing.T) {
	var b strings.Builder
	f := carousel.Render([]string{"a"}, "", carousel.Snapshot{})
	if err := Page("My & Co", Carousel(f)).Render(context.Background(), &b); err != nil {
		t.Fatalf("Page() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "<title>My &amp; Co</title>") {
		t.Fatalf("expected escaped title, got %q", got)
	}
	if !strings.Contains(got, `class="carousel-container"`) || !strings.HasSuffix(got, "</body></html>") {
		t.Fatalf("expected carousel inside document, got %q", got)
	}
}
