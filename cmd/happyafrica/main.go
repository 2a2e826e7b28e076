package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"happyafrica/internal/analytics"
	"happyafrica/internal/catalog"
	"happyafrica/internal/cmdlog"
	"happyafrica/internal/config"
	"happyafrica/internal/genai"
	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
	"happyafrica/internal/model"
	"happyafrica/internal/recommend"
	"happyafrica/internal/store/journal"
	"happyafrica/internal/theme"
	"happyafrica/internal/util"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	var run func() error
	switch cmd {
	case "init":
		run = cmdInit
	case "feed":
		run = cmdFeed
	case "trending":
		run = cmdTrending
	case "search":
		run = cmdSearch
	case "music":
		run = cmdMusic
	case "caption":
		run = cmdCaption
	case "monitor":
		run = cmdMonitor
	case "session":
		run = cmdSession
	default:
		printHelp()
		return
	}
	err := cmdlog.Run(cmd, run)
	logging.Sync()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: happyafrica <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./happyafrica.yaml")
	fmt.Println("  feed        Print the following or for-you feed")
	fmt.Println("  trending    Print the catalog by engagement")
	fmt.Println("  search      Search descriptions, hashtags and authors")
	fmt.Println("  music       List trending songs for uploads")
	fmt.Println("  caption     Generate a caption from a rough description")
	fmt.Println("  monitor     Show hourly engagement from the interaction journal")
	fmt.Println("  session     Interactive feed session over stdin")
}

// app is the wiring shared by every command.
type app struct {
	cfg     config.Config
	engine  *recommend.Engine
	journal *journal.DB
}

func (a *app) Close() {
	if a.journal != nil {
		_ = a.journal.Close()
	}
}

func setup(cfgPath string) (*app, error) {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Development)
	metrics.StartServer(cfg.Metrics.Addr)

	a := &app{cfg: cfg}
	opts := []recommend.Option{recommend.WithRanking(cfg.Ranking), recommend.WithFeed(cfg.Feed)}
	if cfg.Storage.DBPath != "" {
		db, err := journal.Open(cfg.Storage.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		a.journal = db
		opts = append(opts, recommend.WithJournal(db))
	}
	a.engine = recommend.New(catalog.New(catalog.SeedVideos()), opts...)
	return a, nil
}

func printVideos(vs []model.Video) { writeVideos(os.Stdout, vs) }

func writeVideos(w io.Writer, vs []model.Video) {
	for i, v := range vs {
		tag := string(v.Category)
		if v.IsAd {
			tag = "sponsored"
		}
		fmt.Fprintf(w, "%2d. %-14s @%-16s %-9s ♥%-6d %s\n", i+1, v.ID, v.User.Username, tag, v.Likes, util.Truncate(v.Description, 60))
	}
}

func cmdInit() error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./happyafrica.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	if err := config.Save(*path, config.Default()); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
	return nil
}

func cmdFeed() error {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	cfgPath := fs.String("config", "./happyafrica.yaml", "config path")
	feed := fs.String("type", "foryou", "feed type: following or foryou")
	pages := fs.Int("pages", 0, "extra pages to fetch")
	_ = fs.Parse(os.Args[2:])
	ft, err := model.ParseFeedType(*feed)
	if err != nil {
		return err
	}
	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	view := recommend.NewView(a.engine, ft)
	defer view.Close()
	view.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for i := 0; i < *pages; i++ {
		if _, err := view.More(ctx); err != nil {
			return err
		}
	}
	printVideos(view.Items())
	return nil
}

func cmdTrending() error {
	fs := flag.NewFlagSet("trending", flag.ExitOnError)
	cfgPath := fs.String("config", "./happyafrica.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	for i, v := range a.engine.TrendingFeed() {
		fmt.Printf("%2d. %-4s score=%-7d @%s %s\n", i+1, v.ID, model.TrendingScore(v), v.User.Username, strings.Join(v.Hashtags, " "))
	}
	return nil
}

func cmdSearch() error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	cfgPath := fs.String("config", "./happyafrica.yaml", "config path")
	query := fs.String("q", "", "search query")
	_ = fs.Parse(os.Args[2:])
	q := *query
	if q == "" {
		q = strings.Join(fs.Args(), " ")
	}
	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	res := a.engine.SearchVideos(q)
	if len(res) == 0 {
		fmt.Printf("No results for %q\n", q)
		return nil
	}
	printVideos(res)
	return nil
}

func cmdMusic() error {
	fs := flag.NewFlagSet("music", flag.ExitOnError)
	cfgPath := fs.String("config", "./happyafrica.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*a.cfg.GenAI.Timeout)
	defer cancel()
	for _, s := range genai.New(a.cfg.GenAI).TrendingMusic(ctx) {
		fmt.Printf("%-4s %-28s %-32s %s %s\n", s.ID, s.Title, s.Artist, s.Duration, s.Genre)
	}
	return nil
}

func cmdCaption() error {
	fs := flag.NewFlagSet("caption", flag.ExitOnError)
	cfgPath := fs.String("config", "./happyafrica.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	prompt := strings.Join(fs.Args(), " ")
	if prompt == "" {
		return fmt.Errorf("usage: happyafrica caption <description>")
	}
	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*a.cfg.GenAI.Timeout)
	defer cancel()
	fmt.Println(genai.New(a.cfg.GenAI).GenerateCaption(ctx, prompt))
	return nil
}

func cmdMonitor() error {
	fs := flag.NewFlagSet("monitor", flag.ExitOnError)
	cfgPath := fs.String("config", "./happyafrica.yaml", "config path")
	window := fs.Duration("window", 24*time.Hour, "look-back window")
	_ = fs.Parse(os.Args[2:])
	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	if a.journal == nil {
		return fmt.Errorf("monitor needs storage.dbPath or HAPPYAFRICA_DB")
	}
	end := time.Now().UTC()
	events, err := a.journal.LoadRange(context.Background(), end.Add(-*window), end, "")
	if err != nil {
		return err
	}
	b := analytics.HourlyEngagement(events)
	for _, k := range analytics.SortedBucketKeys(b) {
		fmt.Printf("%s -> %v\n", k.Format("2006-01-02 15:00"), b[k])
	}
	fmt.Println("By category:", analytics.CategoryTotals(events))
	return nil
}

func cmdSession() error {
	fs := flag.NewFlagSet("session", flag.ExitOnError)
	cfgPath := fs.String("config", "./happyafrica.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	theme.PrintBanner()
	return newSession(a.engine, genai.New(a.cfg.GenAI), os.Stdout).Run(ctx, os.Stdin)
}
