// Package markup renders carousel frames as HTML, matching the markup of the
// portfolio site the carousel was built for.
package markup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"finecode/internal/carousel"

	"github.com/a-h/templ"
)

// Carousel renders f. An empty frame renders nothing. Each control carries
// its intent in data-intent (and data-index for jumps) so a client script
// can relay it back.
func Carousel(f carousel.Frame) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if f.Empty {
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<div class="carousel-container" data-enter="%s" data-leave="%s"`, f.Enter.Kind, f.Leave.Kind)
		if f.Paused {
			b.WriteString(` data-paused="true"`)
		}
		b.WriteString(">")

		writeButton(&b, "prev", "nf-fa-chevron_left", f.Prev)
		fmt.Fprintf(&b, `<img src="%s" alt="%s" class="carousel-image">`,
			templ.EscapeString(f.Image.Src), templ.EscapeString(f.Image.Alt))
		writeButton(&b, "next", "nf-fa-chevron_right", f.Next)

		b.WriteString(`<div class="carousel-indicators">`)
		for _, ind := range f.Indicators {
			class := "indicator"
			if ind.Active {
				class += " active"
			}
			fmt.Fprintf(&b, `<span class="%s" aria-label="%s" data-intent="%s" data-index="%d"></span>`,
				class, templ.EscapeString(ind.Label), ind.Intent.Kind, ind.Intent.Index)
		}
		b.WriteString(`</div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeButton(b *strings.Builder, side, icon string, a carousel.Affordance) {
	fmt.Fprintf(b, `<button class="carousel-button %s" aria-label="%s" data-intent="%s"><i class="nf %s"></i></button>`,
		side, templ.EscapeString(a.Label), a.Intent.Kind, icon)
}

// Page wraps body in a minimal standalone document.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title><link rel="stylesheet" href="Carousel.css"></head><body><h1>%s</h1>`,
			templ.EscapeString(title), templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
