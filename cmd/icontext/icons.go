// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/sync/errgroup"

	"gioui.org/icontext/layout"
	"gioui.org/icontext/widget"
)

// materialIcons are the icons available as md:<name>.
var materialIcons = map[string][]byte{
	"add":      icons.ContentAdd,
	"check":    icons.NavigationCheck,
	"checkbox": icons.ToggleCheckBox,
	"close":    icons.NavigationClose,
	"delete":   icons.ActionDelete,
	"home":     icons.ActionHome,
	"menu":     icons.NavigationMenu,
	"search":   icons.ActionSearch,
	"send":     icons.ContentSend,
	"star":     icons.ToggleStar,
}

// loadIcons loads the named icons concurrently. Empty names load as
// nil.
func loadIcons(names [len(layout.Slots)]string) ([len(layout.Slots)]widget.Drawable, error) {
	var loaded [len(layout.Slots)]widget.Drawable
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		if name == "" {
			continue
		}
		g.Go(func() error {
			d, err := loadIcon(name)
			if err != nil {
				return fmt.Errorf("%v icon: %w", layout.Slot(i), err)
			}
			log.Printf("loaded %v icon %s: %v", layout.Slot(i), name, d.Size())
			loaded[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

func loadIcon(name string) (widget.Drawable, error) {
	if n := strings.TrimPrefix(name, "md:"); n != name {
		data, ok := materialIcons[n]
		if !ok {
			return nil, fmt.Errorf("unknown material icon %q", n)
		}
		return widget.NewIcon(data)
	}
	if strings.EqualFold(filepath.Ext(name), ".ivg") {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		return widget.NewIcon(data)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return widget.DecodeImage(f)
}
