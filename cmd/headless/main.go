// cmd/headless runs a session without a window at a fixed step and prints
// the session report. With -serve it also streams snapshots to websocket
// spectators while it runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PaliBr/gamejam/internal/app"
	"github.com/PaliBr/gamejam/internal/config"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/observe"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

func main() {
	rulesPath := flag.String("rules", "", "YAML rules file overriding the defaults")
	seconds := flag.Float64("seconds", 120, "game time to simulate")
	step := flag.Duration("step", 16*time.Millisecond, "fixed simulation step")
	towers := flag.String("towers", "", `extra towers to build at start, e.g. "3,4;5,6"`)
	serve := flag.Bool("serve", false, "stream snapshots to websocket spectators at "+config.SpectatorAddr+"/ws")
	flag.Parse()

	rules := defs.DefaultRules()
	if *rulesPath != "" {
		var err error
		if rules, err = defs.LoadRules(*rulesPath); err != nil {
			log.Fatal(err)
		}
	}
	cells, err := parseCells(*towers)
	if err != nil {
		log.Fatal(err)
	}

	g := app.NewGame(rules)
	for _, c := range cells {
		if r := g.PlaceTower(c); r != app.Placed {
			log.Printf("Tower at %v not built: %v", c, r)
		}
	}

	var hub *observe.Hub
	if *serve {
		hub = observe.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			log.Println(http.ListenAndServe(config.SpectatorAddr, mux))
		}()
		defer hub.Close()
	}

	total := time.Duration(*seconds * float64(time.Second))
	for elapsed := time.Duration(0); elapsed < total; elapsed += *step {
		g.Update(*step)
		if hub != nil {
			if err := hub.Publish(g.Snapshot()); err != nil {
				log.Fatal(err)
			}
			// Spectators watch in real time.
			time.Sleep(*step)
		}
	}
	fmt.Print(g.Report())
}

// parseCells reads "x,y;x,y" into cells.
func parseCells(s string) ([]gridmap.Cell, error) {
	var cells []gridmap.Cell
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("bad cell %q: want x,y", pair)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("bad cell %q: %w", pair, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("bad cell %q: %w", pair, err)
		}
		cells = append(cells, gridmap.Cell{X: x, Y: y})
	}
	return cells, nil
}
