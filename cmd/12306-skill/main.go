package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	skill "github.com/kirorab/12306-skill"
	"github.com/kirorab/12306-skill/config"
	"github.com/kirorab/12306-skill/logger"
	"github.com/kirorab/12306-skill/render"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (optional)")
	from := flag.String("from", "", "origin station or city name")
	to := flag.String("to", "", "destination station or city name")
	date := flag.String("date", "", "travel date YYYY-MM-DD (default today)")
	format := flag.String("format", "md", "output format: json|md|html")
	types := flag.String("types", "", "train type letters, e.g. GD")
	depart := flag.String("depart", "", "depart window HH:MM-HH:MM")
	arrive := flag.String("arrive", "", "arrive window HH:MM-HH:MM")
	maxDuration := flag.String("max-duration", "", "duration ceiling, e.g. 5h30m")
	seats := flag.String("seats", "", "required seat classes, e.g. ze,zy")
	available := flag.Bool("available", false, "bookable trains only")
	refresh := flag.Bool("refresh", false, "force a station directory rebuild")
	serve := flag.Bool("serve", false, "run the HTTP server instead of one query")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging)

	app := skill.New(cfg, log)
	defer app.Close()

	if *serve {
		if err := app.StartServer(); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	if *from == "" || *to == "" {
		fmt.Fprintln(os.Stderr, "usage: 12306-skill -from <station> -to <station> [-date YYYY-MM-DD] [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *date == "" {
		*date = time.Now().Format("2006-01-02")
	}

	criteria, err := skill.ParseCriteria(*types, *depart, *arrive, *maxDuration, *seats, *available)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filters: %v\n", err)
		os.Exit(2)
	}

	proj, err := app.Query(context.Background(), skill.QueryRequest{
		From:     *from,
		To:       *to,
		Date:     *date,
		Criteria: criteria,
		Refresh:  *refresh,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}

	var out []byte
	switch *format {
	case "json":
		out, err = render.JSON(*proj)
	case "html":
		out, err = render.HTML(*proj)
	case "md", "markdown":
		out = render.Markdown(*proj)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
	os.Stdout.Write(out)
}
