package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"happyafrica/internal/model"
	"happyafrica/internal/recommend"
	"happyafrica/internal/upload"
)

// session drives one engine from a line protocol, one command per line.
type session struct {
	engine    *recommend.Engine
	publisher *upload.Publisher
	view      *recommend.View
	out       io.Writer
}

func newSession(e *recommend.Engine, captions upload.CaptionGenerator, out io.Writer) *session {
	return &session{
		engine:    e,
		publisher: upload.NewPublisher(captions, e),
		out:       out,
	}
}

// gestures maps session verbs onto tracked interaction types.
var gestures = map[string]model.InteractionType{
	"like":     model.InteractionLike,
	"share":    model.InteractionShare,
	"complete": model.InteractionViewComplete,
	"skip":     model.InteractionSkip,
	"view":     model.InteractionViewStart,
}

func (s *session) Run(ctx context.Context, in io.Reader) error {
	defer func() {
		if s.view != nil {
			s.view.Close()
		}
	}()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		verb, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		if verb == "quit" || verb == "exit" {
			return nil
		}
		if err := s.handle(ctx, strings.ToLower(verb), arg); err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
	}
	return sc.Err()
}

func (s *session) handle(ctx context.Context, verb, arg string) error {
	if typ, ok := gestures[verb]; ok {
		return s.track(ctx, typ, arg)
	}
	switch verb {
	case "feed":
		ft := model.FeedForYou
		if arg != "" {
			var err error
			if ft, err = model.ParseFeedType(arg); err != nil {
				return err
			}
		}
		if s.view != nil {
			s.view.Close()
		}
		s.view = recommend.NewView(s.engine, ft)
		writeVideos(s.out, s.view.Load())
	case "more":
		if s.view == nil {
			return fmt.Errorf("no feed open")
		}
		page, err := s.view.More(ctx)
		if err != nil {
			return err
		}
		writeVideos(s.out, page)
	case "trending":
		writeVideos(s.out, s.engine.TrendingFeed())
	case "search":
		res := s.engine.SearchVideos(arg)
		if len(res) == 0 {
			fmt.Fprintf(s.out, "No results for %q\n", arg)
			return nil
		}
		writeVideos(s.out, res)
	case "upload":
		v, err := s.publisher.Publish(ctx, upload.Draft{Description: arg})
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "published %s: %s %s\n", v.ID, v.Description, strings.Join(v.Hashtags, " "))
	case "profile":
		s.writeProfile()
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
	return nil
}

func (s *session) track(ctx context.Context, typ model.InteractionType, id string) error {
	v, ok := s.lookup(id)
	if !ok {
		return fmt.Errorf("video %q not found", id)
	}
	s.engine.TrackInteraction(ctx, v, typ)
	if v.IsAd {
		fmt.Fprintf(s.out, "%s %s (sponsored)\n", typ, v.ID)
		return nil
	}
	fmt.Fprintf(s.out, "%s %s %s=%.2f\n", typ, v.ID, v.Category, s.engine.Profile().Get(v.Category))
	return nil
}

// lookup prefers entries of the open feed, whose IDs may be page copies.
func (s *session) lookup(id string) (model.Video, bool) {
	if s.view != nil {
		for _, v := range s.view.Items() {
			if v.ID == id {
				return v, true
			}
		}
	}
	return s.engine.Catalog().Find(id)
}

func (s *session) writeProfile() {
	snap := s.engine.Profile().Snapshot()
	cats := make([]string, 0, len(snap))
	for c := range snap {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Fprintf(s.out, "%-8s %.2f\n", c, snap[model.Category(c)])
	}
}
