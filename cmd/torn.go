package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mfiguera/torn"
	"github.com/mfiguera/torn/config"
	"github.com/mfiguera/torn/internal/jsonutil"
	"github.com/mfiguera/torn/internal/logging"
	"github.com/mfiguera/torn/server"
	"github.com/mfiguera/torn/weather"
)

func main() {
	app := &cli.App{
		Name:  "torn",
		Usage: "look up transit shift schedules",
		Commands: []*cli.Command{
			{
				Name:      "lookup",
				Usage:     "resolve the service blocks of a shift on a date",
				ArgsUsage: "torn-id",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "shifts", Value: "torn.json", Usage: "path or URL of the shift table"},
					&cli.StringFlag{Name: "calendar", Value: "calendari.json", Usage: "path or URL of the calendar table"},
					&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "date to resolve (YYYY-MM-DD or D/M/YYYY, default today)"},
				},
				Action: lookupAction,
			},
			{
				Name:      "presence",
				Usage:     "show the presence-map section of a shift",
				ArgsUsage: "torn-id",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Value: "mapa_presencia.md", Usage: "path to the presence map"},
					&cli.BoolFlag{Name: "plain", Usage: "print raw markdown without terminal rendering"},
				},
				Action: presenceAction,
			},
			{
				Name:      "weather",
				Usage:     "show the latest observation of a weather station",
				ArgsUsage: "station-ref",
				Action:    weatherAction,
			},
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Value: "config.yml", Usage: "path to the configuration file"},
				},
				Action: serveAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// sourceFor reads a table from a URL when given one, from disk otherwise.
func sourceFor(pathOrURL string) torn.Source {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return torn.HTTPSource(nil, pathOrURL)
	}
	return torn.FileSource(pathOrURL)
}

func lookupAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("a shift identifier was not provided")
	}
	shiftID := ctx.Args().First()
	date := ctx.String("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	dataset, warns, err := torn.Load(ctx.Context,
		sourceFor(ctx.String("shifts")),
		sourceFor(ctx.String("calendar")))
	if err != nil {
		return fmt.Errorf("failed to load schedule data: %w", err)
	}
	for _, warn := range warns {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warn.Error())
	}
	results, dayService := dataset.Lookup(date, shiftID)
	sc := color.New(color.FgCyan)
	fmt.Printf("Servei del dia %s: %s\n", torn.NormalizeDate(date), sc.Sprint(dayService))
	if len(results) == 0 {
		color.Yellow("No matching service blocks for %s", shiftID)
		return nil
	}
	vc := color.New(color.FgGreen)
	for _, r := range results {
		fmt.Printf("Torn %s  %s - %s  Línia %s  Zona %s\n",
			vc.Sprint(r.Torn), vc.Sprint(r.Inici), vc.Sprint(r.Fi), r.Linia, r.Zona)
	}
	return nil
}

func presenceAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("a shift identifier was not provided")
	}
	shiftID := ctx.Args().First()
	path := ctx.String("file")
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	section := torn.ExtractSection(string(b), shiftID)
	if section == "" {
		color.Yellow("No presence-map section found for %s", shiftID)
		return nil
	}
	if ctx.Bool("plain") {
		fmt.Println(section)
		return nil
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		fmt.Println(section)
		return nil
	}
	rendered, err := renderer.Render(section)
	if err != nil {
		fmt.Println(section)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func weatherAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("a station reference was not provided")
	}
	client := weather.NewClient(nil, "")
	obs, err := client.Fetch(ctx.Context, ctx.Args().First())
	if err != nil {
		return err
	}
	nc := color.New(color.FgCyan)
	fmt.Printf("%s (%s)\n", nc.Sprint(obs.StationName), obs.StationCode)
	if !obs.PublishedAt.IsZero() {
		fmt.Printf("Updated %s\n", obs.PublishedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("Temperature %s°C (max %s, min %s)\n", obs.Temperature.Current, obs.Temperature.Max, obs.Temperature.Min)
	fmt.Printf("Humidity    %s%%  (max %s, min %s)\n", obs.Humidity.Current, obs.Humidity.Max, obs.Humidity.Min)
	fmt.Printf("Pressure    %s hPa (max %s, min %s)\n", obs.Pressure.Current, obs.Pressure.Max, obs.Pressure.Min)
	fmt.Printf("Wind        %s km/h (max %s, dir %s°)\n", obs.Wind.Current, obs.Wind.Max, obs.Wind.Direction)
	fmt.Printf("Rain        %s mm\n", obs.Precipitation)
	return nil
}

func serveAction(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.New(os.Stdout, slog.LevelInfo)

	store := &torn.Store{}
	shifts := sourceFor(cfg.Data.Shifts)
	calendar := sourceFor(cfg.Data.Calendar)
	warns, err := store.Reload(context.Background(), shifts, calendar)
	if err != nil {
		return fmt.Errorf("initial data load failed: %w", err)
	}
	for _, warn := range warns {
		logger.Warn("skipped row", "table", warn.Table(), "reason", warn.Error())
	}

	opts := server.Options{
		Logger:   logger,
		Store:    store,
		Shifts:   shifts,
		Calendar: calendar,
		Weather:  weather.NewClient(nil, cfg.Weather.FeedURL),
		Env:      cfg.Server.Env,
	}
	if cfg.Data.Presence != "" {
		b, err := os.ReadFile(cfg.Data.Presence)
		if err != nil {
			return fmt.Errorf("failed to read presence map: %w", err)
		}
		opts.Presence = string(b)
	}
	if cfg.Data.Stations != "" {
		b, err := os.ReadFile(cfg.Data.Stations)
		if err != nil {
			return fmt.Errorf("failed to read station directory: %w", err)
		}
		directory, err := weather.LoadDirectory(b)
		if err != nil {
			return fmt.Errorf("failed to parse station directory: %w", err)
		}
		logger.Info("loaded station directory", "stations", directory.Len())
		opts.Stations = directory
	}
	if usersEnv := os.Getenv("USERS"); usersEnv != "" {
		users := map[string]string{}
		if err := jsonutil.Unmarshal([]byte(usersEnv), &users); err != nil {
			return fmt.Errorf("failed to parse USERS: %w", err)
		}
		opts.Users = users
	}

	return server.New(opts).Serve(cfg.Server.Port)
}
