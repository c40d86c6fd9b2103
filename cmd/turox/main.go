package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/turox/turox/internal/board"
	"github.com/turox/turox/internal/config"
	"github.com/turox/turox/internal/engine"
	"github.com/turox/turox/internal/render"
	"github.com/turox/turox/internal/storage"
)

var (
	configFile = flag.String("f", "", "the config file")
	empty      = flag.Bool("empty", false, "start from an empty board")
	placement  = flag.String("placement", "", "start from a FEN piece placement field")
	put        = flag.String("put", "", "pieces to place, e.g. e4=Q,c7=p")
	clearSqs   = flag.String("clear", "", "squares to empty, e.g. e2,d7")
	diagram    = flag.Bool("diagram", false, "print a diagram of the board")
	svgFile    = flag.String("svg", "", "write an SVG diagram to this file")
	pngFile    = flag.String("png", "", "write a PNG diagram to this file")
	saveName   = flag.String("save", "", "save the board under this name")
	loadName   = flag.String("load", "", "start from the board saved under this name")
	deleteName = flag.String("delete", "", "delete the board saved under this name")
	list       = flag.Bool("list", false, "list saved boards")
)

func main() {
	flag.Parse()

	c, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logx.MustSetup(c.Log)
	logx.DisableStat()
	defer logx.Close()

	if err := run(c); err != nil {
		logx.Error(err)
		logx.Close()
		os.Exit(1)
	}
}

func run(c config.Config) error {
	var store *storage.Store
	openStore := func() (*storage.Store, error) {
		if store != nil {
			return store, nil
		}
		var err error
		store, err = storage.Open(storage.Options{Dir: c.Storage.Path, InMemory: c.Storage.InMemory})
		return store, err
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if *list || *deleteName != "" {
		s, err := openStore()
		if err != nil {
			return err
		}
		if *deleteName != "" {
			if err := s.Delete(*deleteName); err != nil {
				return err
			}
		}
		if *list {
			return listSnapshots(s)
		}
		return nil
	}

	eng, err := newEngine(openStore)
	if err != nil {
		return err
	}

	if err := applyEdits(eng.Board(), *clearSqs, *put); err != nil {
		return err
	}

	fmt.Println(eng.FEN())

	if *diagram {
		if err := render.Text(os.Stdout, *eng.Board(), c.Render.Color); err != nil {
			return err
		}
	}

	opts := render.Options{
		SquareSize:  c.Render.SquareSize,
		LightSquare: c.Render.LightSquare,
		DarkSquare:  c.Render.DarkSquare,
		Coordinates: true,
	}
	if *svgFile != "" {
		if err := writeFile(*svgFile, func(f *os.File) error { return render.SVG(f, *eng.Board(), opts) }); err != nil {
			return err
		}
	}
	if *pngFile != "" {
		if err := writeFile(*pngFile, func(f *os.File) error { return render.PNG(f, *eng.Board(), opts) }); err != nil {
			return err
		}
	}

	if *saveName != "" {
		s, err := openStore()
		if err != nil {
			return err
		}
		if _, err := s.Save(*saveName, *eng.Board()); err != nil {
			return err
		}
	}

	return nil
}

// newEngine builds the engine from the -load, -placement and -empty flags, in
// that order of precedence.
func newEngine(openStore func() (*storage.Store, error)) (*engine.Engine, error) {
	switch {
	case *loadName != "":
		s, err := openStore()
		if err != nil {
			return nil, err
		}
		b, err := s.Load(*loadName)
		if err != nil {
			return nil, err
		}
		return engine.NewEngineWithBoard(b), nil

	case *placement != "":
		b, err := board.ParsePlacement(*placement)
		if err != nil {
			return nil, err
		}
		return engine.NewEngineWithBoard(b), nil

	case *empty:
		return engine.NewEngineWithBoard(board.NewEmptyBoard()), nil
	}

	return engine.NewEngine(), nil
}

func listSnapshots(s *storage.Store) error {
	snaps, err := s.List()
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		fmt.Printf("%-20s %s  %s\n", snap.Name, snap.SavedAt.Format("2006-01-02 15:04:05"), snap.Placement)
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logx.Infow("diagram written", logx.Field("path", path))
	return nil
}
