// Command lexgen runs generation requests from the command line and
// writes the results as JSON. A single request prints to stdout or -out;
// -out-dir switches to batch mode, producing one JSON file per generated
// set in the given directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/lexidrill/lexidrill-backend/internal/adapter/provider/dispatch"
	"github.com/lexidrill/lexidrill-backend/internal/adapter/settingsfile"
	"github.com/lexidrill/lexidrill-backend/internal/app"
	"github.com/lexidrill/lexidrill-backend/internal/config"
	practicesvc "github.com/lexidrill/lexidrill-backend/internal/service/practice"
	settingssvc "github.com/lexidrill/lexidrill-backend/internal/service/settings"
)

func main() {
	var (
		mode    = flag.String("mode", "words", "generation mode: words, cloze, grammar or explain")
		words   = flag.String("words", "", "word list for words and cloze modes")
		topic   = flag.String("topic", "", "grammar topic for grammar mode")
		grade   = flag.String("grade", "", "grade level for grammar mode")
		count   = flag.Int("count", 0, "number of questions, 0 uses the configured default")
		outPath = flag.String("out", "", "write JSON to this file instead of stdout")
		outDir  = flag.String("out-dir", "", "batch mode: write one JSON file per set into this directory")
		timeout = flag.Duration("timeout", 10*time.Minute, "overall deadline")
	)
	flag.Parse()

	if err := run(*mode, *words, *topic, *grade, *count, *outPath, *outDir, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		os.Exit(1)
	}
}

func run(mode, words, topic, grade string, count int, outPath, outDir string, timeout time.Duration) error {
	if outPath != "" && outDir != "" {
		return fmt.Errorf("-out and -out-dir are mutually exclusive")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := app.NewLogger(cfg.Log)

	store := settingsfile.NewStore(cfg.Settings.Path, log)
	settingsService, err := settingssvc.NewService(log, store, cfg.DefaultSettings())
	if err != nil {
		return fmt.Errorf("init settings: %w", err)
	}

	dispatcher := dispatch.New(cfg.LLM.APIKey, log)
	practice := practicesvc.NewService(log, dispatcher, settingsService, cfg.Practice.GradeLevel)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if outDir != "" {
		return runBatch(ctx, log, practice, mode, words, topic, grade, count, outDir)
	}

	var result any
	switch mode {
	case "words":
		result, err = practice.GenerateWordPairs(ctx, words)
	case "cloze":
		result, err = practice.GenerateContextQuestions(ctx, words, count)
	case "grammar":
		result, err = practice.GenerateGrammarBundle(ctx, topic, grade, count)
	case "explain":
		args := flag.Args()
		if len(args) != 3 {
			return fmt.Errorf("explain mode needs three arguments: sentence, correct, given")
		}
		result, err = practice.ExplainMistake(ctx, args[0], args[1], args[2])
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.Info("result written", "path", outPath, "mode", mode)
	return nil
}

// runBatch generates one set per input and writes each to
// <dir>/<name>.json: per word for words and cloze, per topic for grammar.
func runBatch(ctx context.Context, log *slog.Logger, practice *practicesvc.Service, mode, words, topic, grade string, count int, dir string) error {
	switch mode {
	case "words":
		pairs, err := practice.GenerateWordPairs(ctx, words)
		if err != nil {
			return err
		}
		for _, p := range pairs {
			if err := writeSet(dir, p.En, p); err != nil {
				return err
			}
			log.Info("set written", "mode", mode, "word", p.En)
		}
		return nil

	case "cloze":
		list := practicesvc.SplitWords(words)
		if len(list) == 0 {
			return fmt.Errorf("cloze batch needs a word list")
		}
		for _, word := range list {
			questions, err := practice.GenerateContextQuestions(ctx, word, count)
			if err != nil {
				return fmt.Errorf("word %q: %w", word, err)
			}
			if err := writeSet(dir, word, questions); err != nil {
				return err
			}
			log.Info("set written", "mode", mode, "word", word)
		}
		return nil

	case "grammar":
		bundle, err := practice.GenerateGrammarBundle(ctx, topic, grade, count)
		if err != nil {
			return err
		}
		if err := writeSet(dir, topic, bundle); err != nil {
			return err
		}
		log.Info("set written", "mode", mode, "topic", topic)
		return nil

	default:
		return fmt.Errorf("mode %q does not support batch output", mode)
	}
}

// writeSet marshals v and writes it to <dir>/<safe name>.json, creating
// the directory as needed.
func writeSet(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, safeFileName(name)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// safeFileName lowercases name and keeps only letters, digits and
// underscores, turning runs of anything else into single hyphens.
func safeFileName(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "set"
	}
	return out
}
