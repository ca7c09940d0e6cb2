// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gioui.org/icontext/layout"
	"gioui.org/icontext/style"
	"gioui.org/icontext/text"
	"gioui.org/icontext/unit"
	"gioui.org/icontext/widget"
)

var (
	stylePath = flag.String("style", "", "TOML style file.")
	label     = flag.String("text", "", "text to lay out.")
	width     = flag.Int("width", 0, "measured width in pixels (0 fits the content).")
	density   = flag.Float64("density", 1, "pixels per dp and sp.")
	leading   = flag.String("leading", "", "leading icon.")
	top       = flag.String("top", "", "top icon.")
	trailing  = flag.String("trailing", "", "trailing icon.")
	bottom    = flag.String("bottom", "", "bottom icon.")
	destPath  = flag.String("o", "", "output PNG file.")
	verbose   = flag.Bool("v", false, "verbose output.")
)

type config struct {
	style  style.Style
	text   string
	width  int
	metric unit.Metric
	// icons by layout.Slot.
	icons [len(layout.Slots)]string
	out   string
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("icontext: ")
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "icontext: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	if *label == "" {
		return errors.New("specify -text")
	}
	if *width < 0 {
		return fmt.Errorf("invalid -width %d", *width)
	}
	if *density <= 0 {
		return fmt.Errorf("invalid -density %g", *density)
	}
	cfg := config{
		style:  style.Default(),
		text:   *label,
		width:  *width,
		metric: unit.Metric{PxPerDp: float32(*density), PxPerSp: float32(*density)},
		icons:  [...]string{*leading, *top, *trailing, *bottom},
		out:    *destPath,
	}
	if *stylePath != "" {
		s, err := style.Load(*stylePath)
		if err != nil {
			return err
		}
		cfg.style = s
	}
	return run(cfg, os.Stdout)
}

// run lays out cfg, prints the icon boxes to w and renders the
// result if cfg.out is set.
func run(cfg config, w io.Writer) error {
	icons, err := loadIcons(cfg.icons)
	if err != nil {
		return err
	}
	dir, err := cfg.style.TextDirection()
	if err != nil {
		return err
	}
	it := &widget.IconText{
		Invalidate: func() { log.Println("layout requested") },
	}
	if err := cfg.style.Apply(cfg.metric, it); err != nil {
		return err
	}
	it.SetIcons(icons[layout.Leading], icons[layout.Top], icons[layout.Trailing], icons[layout.Bottom])

	sh, err := text.NewDefaultShaper(unit.Sp(cfg.style.TextSize), cfg.metric)
	if err != nil {
		return err
	}
	defer sh.Close()
	l := &widget.Label{
		Text:    cfg.text,
		Shaper:  sh,
		Inset:   cfg.style.Inset(cfg.metric),
		Spacing: cfg.style.Spacing(cfg.metric),
	}
	l.Width = cfg.width
	if l.Width == 0 {
		l.Width = l.WrapWidth(it)
	}
	ctx := it.Layout(l)
	log.Printf("measured %+v", ctx)

	fmt.Fprintf(w, "width %d, text %d, alignment %v, offset %d\n", ctx.AvailableWidth, ctx.TextWidth, it.Alignment, ctx.Offset())
	for _, s := range layout.Slots {
		if it.Icon(s) == nil {
			continue
		}
		fmt.Fprintf(w, "%-8s %-5s %v\n", s, s.Side(dir), it.Bounds(s))
	}
	if cfg.out == "" {
		return nil
	}
	return render(cfg.out, it, l, ctx, dir)
}
