//go:build ignore

package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/AndrewHarrisSPU/logfox"
	"golang.org/x/exp/slog"
)

func main() {
	logfox.SetTimeFormat("15:04:05.000")

	// mirror every line as JSON on stderr
	logfox.AddSink(logfox.SlogSink(slog.NewJSONHandler(os.Stderr, nil)))

	slog.SetDefault(slog.New(logfox.NewHandler(nil, "slogging").WithAttrs([]slog.Attr{
		slog.String("place", "world"),
	})))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// random log traffic
	go ping(ctx, slog.LevelDebug, 100)
	go ping(ctx, slog.LevelInfo, 1_000)
	go ping(ctx, slog.LevelWarn, 4_000)

	<-ctx.Done()
	slog.Error("done", "err", ctx.Err())
}

func ping(ctx context.Context, level slog.Level, interval int) {
	log := slog.Default().WithGroup(level.String())
	for i := 0; ; i++ {
		d := time.Duration(rand.Intn(interval)) * time.Millisecond
		select {
		case <-ctx.Done():
			return
		case <-time.After(d):
		}
		log.Log(ctx, level, "Hello", "i", i)
	}
}
