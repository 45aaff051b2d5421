package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"roomforge/pkg/engine/input"
	"roomforge/pkg/engine/terminal"
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/content"
	"roomforge/pkg/game/devtools"
	"roomforge/pkg/game/level"
)

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

// parseSides turns a comma separated list such as "north,east" into
// directions. An empty string yields no sides.
func parseSides(s string) ([]world.Direction, error) {
	var sides []world.Direction
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for _, d := range world.AllDirections() {
			if strings.EqualFold(d.String(), name) {
				sides = append(sides, d)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown side %q", name)
		}
	}
	return sides, nil
}

func parseStyles(s string) []string {
	var styles []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			styles = append(styles, name)
		}
	}
	return styles
}

// helpText lists the walk mode key bindings
func helpText() string {
	byAction := input.BindingsByAction()
	var parts []string
	for a := input.ActionMoveNorth; a <= input.ActionQuit; a++ {
		parts = append(parts, fmt.Sprintf("%s: %s", input.ActionName(a), strings.Join(byAction[a], "/")))
	}
	return strings.Join(parts, "  ")
}

// walk shows one room at a time and moves through doors on key presses
// until quit or end of input
func walk(lvl *level.Level, colored bool, dumpPath string, logger *log.Logger) error {
	loaded, spawn, err := lvl.Start()
	if err != nil {
		return err
	}
	message := helpText()

	for {
		if colored {
			fmt.Print("\033[H\033[2J")
		}
		if err := devtools.WriteRoom(os.Stdout, lvl, loaded, spawn, colored); err != nil {
			return err
		}
		fmt.Printf("%s\n> ", message)
		message = ""

		code, err := input.ReadKey(os.Stdin)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		action := input.MapToAction(code)
		if dir, ok := action.Direction(); ok {
			next, arrival, err := lvl.Traverse(loaded.Room.ID, dir)
			switch {
			case errors.Is(err, level.ErrNoConnection):
				message = fmt.Sprintf("No door to the %v", dir)
			case err != nil:
				return err
			default:
				loaded, spawn = next, arrival
			}
			continue
		}

		switch action {
		case input.ActionRegenerate:
			if loaded, err = lvl.Load(loaded.Room.ID); err != nil {
				return err
			}
		case input.ActionRestart:
			if loaded, spawn, err = lvl.Start(); err != nil {
				return err
			}
		case input.ActionDump:
			path, err := devtools.DumpToFile(dumpPath, lvl, devtools.DumpOptions{})
			if err != nil {
				logger.Printf("Cannot write dump: %v", err)
				message = "Dump failed"
			} else {
				message = "Level written to " + path
			}
		case input.ActionHelp:
			message = helpText()
		case input.ActionQuit:
			fmt.Println()
			return nil
		}
	}
}

func main() {
	defaults := level.DefaultConfig()

	rooms := flag.Int("rooms", defaults.Chain.RoomCount, "number of rooms in the chain")
	width := flag.Int("width", defaults.Chain.PixelWidth, "room width in pixels")
	height := flag.Int("height", defaults.Chain.PixelHeight, "room height in pixels")
	tile := flag.Int("tile", defaults.Chain.TileSize, "tile size in pixels")
	doorWidth := flag.Int("door-width", defaults.Chain.DoorWidth, "door width in tiles")
	sides := flag.String("sides", "north,east,south,west", "walls an exit may be placed on")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	styles := flag.String("styles", strings.Join(defaults.StyleSequence, ","), "style rotation applied by room order")
	density := flag.Float64("density", defaults.Content.Density, "obstacle density for styles without their own")
	clusters := flag.Bool("clusters", defaults.Content.Clusters.Enabled, "grow obstacle clusters")
	protectEntrances := flag.Bool("protect-entrances", false, "also keep a clear path to entrance doors")
	withContent := flag.Bool("content", true, "generate and show content for every room")
	out := flag.String("out", "", "write the dump to this file instead of stdout")
	colorMode := flag.String("color", "auto", "color output: auto, always or never")
	lang := flag.String("lang", "en_GB", "language for names and headings")
	walkMode := flag.Bool("walk", false, "walk the level room by room from the keyboard")
	flag.Parse()

	initGettext(*lang)

	exitSides, err := parseSides(*sides)
	if err != nil {
		log.Fatalf("Invalid -sides: %v", err)
	}

	cfg := defaults
	cfg.Chain.RoomCount = *rooms
	cfg.Chain.PixelWidth = *width
	cfg.Chain.PixelHeight = *height
	cfg.Chain.TileSize = *tile
	cfg.Chain.DoorWidth = *doorWidth
	cfg.Chain.ExitSides = exitSides
	cfg.Content.Density = *density
	cfg.Content.Clusters.Enabled = *clusters
	cfg.Content.ProtectEntrances = *protectEntrances
	cfg.StyleSequence = parseStyles(*styles)
	cfg.Seed = *seed

	logger := log.New(os.Stderr, "roomforge: ", log.LstdFlags)

	lvl, err := level.New(cfg, content.DefaultCatalog(), content.DefaultStyles(), logger)
	if err != nil {
		log.Fatalf("Cannot generate level: %v", err)
	}

	opts := devtools.DumpOptions{Content: *withContent}
	switch *colorMode {
	case "always":
		opts.Color = true
	case "never":
		opts.Color = false
	default:
		opts.Color = (*out == "" || *walkMode) && terminal.IsTerminal(os.Stdout)
	}

	if *walkMode {
		if err := walk(lvl, opts.Color, *out, logger); err != nil {
			log.Fatalf("Walk failed: %v", err)
		}
		return
	}

	if _, _, err := lvl.Start(); err != nil {
		log.Fatalf("Cannot load start room: %v", err)
	}

	if *out != "" {
		path, err := devtools.DumpToFile(*out, lvl, opts)
		if err != nil {
			log.Fatalf("Cannot write dump: %v", err)
		}
		logger.Printf("Level with seed %d written to %s", lvl.Seed(), path)
		return
	}

	if err := devtools.Dump(os.Stdout, lvl, opts); err != nil {
		log.Fatalf("Cannot write dump: %v", err)
	}
}
