package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jayparimi/beyond-january/internal/adapter/repo"
	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/infra"
)

type seedFile struct {
	Templates []seedTemplate `yaml:"templates"`
}

type seedTemplate struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Emoji       string `yaml:"emoji"`
	Sort        int    `yaml:"sort"`
}

func main() {
	var (
		fileFlag   string
		dryRunFlag bool
	)

	flag.StringVar(&fileFlag, "file", "seed/templates.yaml", "path to the templates YAML file")
	flag.BoolVar(&dryRunFlag, "dry-run", false, "parse and validate without writing to the database")
	flag.Parse()

	raw, err := os.ReadFile(fileFlag)
	if err != nil {
		exitWithError(fmt.Errorf("failed to read seed file: %w", err))
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		exitWithError(fmt.Errorf("failed to parse seed file: %w", err))
	}
	if len(file.Templates) == 0 {
		exitWithError(fmt.Errorf("seed file %s lists no templates", fileFlag))
	}

	titler := cases.Title(language.Und)
	seen := make(map[string]struct{}, len(file.Templates))
	for i := range file.Templates {
		tpl := &file.Templates[i]
		tpl.Slug = strings.TrimSpace(strings.ToLower(tpl.Slug))
		tpl.Title = strings.TrimSpace(tpl.Title)
		tpl.Category = strings.TrimSpace(strings.ToLower(tpl.Category))
		if tpl.Slug == "" {
			exitWithError(fmt.Errorf("template %d has no slug", i+1))
		}
		if tpl.Title == "" {
			exitWithError(fmt.Errorf("template %q has no title", tpl.Slug))
		}
		if _, dup := seen[tpl.Slug]; dup {
			exitWithError(fmt.Errorf("duplicate template slug %q", tpl.Slug))
		}
		seen[tpl.Slug] = struct{}{}
		// Lazily lowercased titles get title-cased; anything already cased
		// is kept as the author wrote it.
		if tpl.Title == strings.ToLower(tpl.Title) {
			tpl.Title = titler.String(tpl.Title)
		}
		if tpl.Sort == 0 {
			tpl.Sort = (i + 1) * 10
		}
	}

	if dryRunFlag {
		for _, tpl := range file.Templates {
			fmt.Printf("%-24s %s\n", tpl.Slug, tpl.Title)
		}
		fmt.Printf("Validated %d templates from %s (dry run)\n", len(file.Templates), fileFlag)
		return
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewCLILogger("seedcatalog")
	runner := infra.NewSQLRunner(pool, logger)
	templates := repo.NewTemplateRepository(runner)

	for _, tpl := range file.Templates {
		upsertCtx, cancelUpsert := context.WithTimeout(context.Background(), 5*time.Second)
		stored, err := templates.UpsertBySlug(upsertCtx, &domain.GoalTemplate{
			Slug:        tpl.Slug,
			Title:       tpl.Title,
			Category:    tpl.Category,
			Description: tpl.Description,
			Emoji:       tpl.Emoji,
			SortOrder:   tpl.Sort,
			Active:      true,
		})
		cancelUpsert()
		if err != nil {
			exitWithError(fmt.Errorf("failed to upsert template %q: %w", tpl.Slug, err))
		}
		fmt.Printf("%-24s %s\n", stored.Slug, stored.Title)
	}
	fmt.Printf("Seeded %d templates from %s\n", len(file.Templates), fileFlag)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
