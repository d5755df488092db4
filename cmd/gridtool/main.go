package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"cognitive-grid/internal/collision"
	"cognitive-grid/internal/config"
	"cognitive-grid/internal/domain"
	"cognitive-grid/internal/level"
	"cognitive-grid/internal/pathfind"
	"cognitive-grid/internal/version"
	"cognitive-grid/pkg/dungeon"
	"cognitive-grid/pkg/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Log.Fatal(err)
	}
}

type options struct {
	configPath string
	mapPath    string
	generate   int64
	from       string
	to         string
	step       string
	movement   string
	hero       bool
	limit      int
	convert    string
	version    bool
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("gridtool", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&o.configPath, "config", "", "Path to YAML config")
	fs.StringVar(&o.mapPath, "map", "", "Level file (.yaml or .grid)")
	fs.Int64Var(&o.generate, "generate", 0, "Generate a dungeon with this seed instead of -map")
	fs.StringVar(&o.from, "from", "", "Start cell x,y")
	fs.StringVar(&o.to, "to", "", "Goal cell x,y")
	fs.StringVar(&o.step, "step", "", "Resolve a move from -from by dx,dy")
	fs.StringVar(&o.movement, "movement", "normal", "Movement class: normal, flying, intangible")
	fs.BoolVar(&o.hero, "hero", false, "Mover passes through allies")
	fs.IntVar(&o.limit, "limit", 0, "Path search budget (0 = config value)")
	fs.StringVar(&o.convert, "convert", "", "Write the loaded level to this file and exit")
	fs.BoolVar(&o.version, "version", false, "Print build info and exit")
	err := fs.Parse(args)
	return o, err
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	if opts.version {
		fmt.Fprintln(out, version.String())
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.SetOutput(os.Stderr)

	lvl, err := loadLevel(opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"level":  lvl.Name,
		"width":  lvl.Grid.Width(),
		"height": lvl.Grid.Height(),
	}).Info("Level loaded")

	if opts.convert != "" {
		if err := level.Save(opts.convert, lvl); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", opts.convert)
		return nil
	}

	mc, ok := domain.ParseMovementClass(opts.movement)
	if !ok {
		return fmt.Errorf("unknown movement class %q", opts.movement)
	}

	eng := collision.New(log, rand.New(rand.NewSource(cfg.Seed)))
	eng.ForceSlide = cfg.ForceSlide
	if err := eng.SetMap(lvl.Grid); err != nil {
		return err
	}

	if opts.from == "" {
		for _, row := range level.Render(eng.Grid()) {
			fmt.Fprintln(out, row)
		}
		return nil
	}
	from, err := parsePoint(opts.from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}

	if opts.step != "" {
		return runMove(out, eng, from, opts.step, mc, collision.CollisionClassFor(opts.hero))
	}

	if opts.to == "" {
		return errors.New("-to or -step is required with -from")
	}
	to, err := parsePoint(opts.to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	limit := opts.limit
	if limit == 0 {
		limit = cfg.PathLimit
	}
	return runQueries(out, eng, from, to, mc, limit, log)
}

func loadLevel(opts options) (*level.Level, error) {
	switch {
	case opts.mapPath != "":
		return level.Load(opts.mapPath)
	case opts.generate != 0:
		g, _, err := dungeon.Generate(rand.New(rand.NewSource(opts.generate)), dungeon.DefaultOptions())
		if err != nil {
			return nil, err
		}
		return &level.Level{Name: fmt.Sprintf("dungeon-%d", opts.generate), Grid: g}, nil
	}
	return nil, errors.New("-map or -generate is required")
}

func runQueries(out io.Writer, eng *collision.Engine, from, to domain.Point, mc domain.MovementClass, limit int, log logrus.FieldLogger) error {
	a, b := from.Center(), to.Center()

	fmt.Fprintf(out, "sight:    %v\n", eng.LineOfSight(a.X, a.Y, b.X, b.Y))
	fmt.Fprintf(out, "movement: %v\n", eng.LineOfMovement(a.X, a.Y, b.X, b.Y, mc))

	res := pathfind.New(eng, log).ComputePath(a, b, mc, limit, nil)
	pathfind.Reverse(res.Path)

	fmt.Fprintf(out, "path:     reached=%v explored=%d steps=%d\n", res.Reached, res.Explored, len(res.Path))
	for _, p := range res.Path {
		c := p.Cell()
		fmt.Fprintf(out, "  %d,%d\n", c.X, c.Y)
	}
	return nil
}

func runMove(out io.Writer, eng *collision.Engine, from domain.Point, step string, mc domain.MovementClass, cc domain.CollisionClass) error {
	dx, dy, err := parsePair(step, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return fmt.Errorf("-step: %w", err)
	}

	pos := from.Center()
	ok := eng.Move(&pos, dx, dy, mc, cc)
	fmt.Fprintf(out, "move:     ok=%v pos=%.3f,%.3f\n", ok, pos.X, pos.Y)
	return nil
}

func parsePoint(s string) (domain.Point, error) {
	x, y, err := parsePair(s, strconv.Atoi)
	return domain.Point{X: x, Y: y}, err
}

func parsePair[T any](s string, parse func(string) (T, error)) (T, T, error) {
	var zero T
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return zero, zero, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := parse(strings.TrimSpace(xs))
	if err != nil {
		return zero, zero, err
	}
	y, err := parse(strings.TrimSpace(ys))
	if err != nil {
		return zero, zero, err
	}
	return x, y, nil
}
