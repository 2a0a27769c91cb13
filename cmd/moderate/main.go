// Command moderate lists comments awaiting approval and approves them by id.
//
//	moderate            # list pending comments
//	moderate -approve 4,7
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/travel-blog-backend/config"
	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
)

func main() {
	approve := flag.String("approve", "", "Comma separated comment ids to approve")
	outputJSON := flag.Bool("json", false, "Output pending comments as JSON")
	flag.Parse()

	os.Exit(run(*approve, *outputJSON))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(approve string, outputJSON bool) int {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var ids []uint
	if approve != "" {
		var err error
		if ids, err = parseIDs(approve); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
	}

	settings := config.Load(config.New())
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	driver := database.DriverPostgres
	if settings.Database.Type == "sqlite" {
		driver = database.DriverSQLite
	}
	gormDB, err := database.Open(database.Options{
		Driver: driver,
		DSN:    settings.Database.DSN(),
		Logger: log.Logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		return 1
	}
	db := database.New(gormDB)
	defer func() {
		if err := db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing database: %v\n", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if len(ids) > 0 {
		if failed := approveAll(ctx, db.CommentRepo(), ids); failed > 0 {
			return 1
		}
		return 0
	}

	pending, err := db.CommentRepo().FindPending(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing pending comments: %v\n", err)
		return 1
	}

	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pending); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return 1
		}
		return 0
	}
	printPending(os.Stdout, describeOwners(ctx, db.DiaryRepo(), db.BlogPostRepo(), pending))
	return 0
}

type approver interface {
	Approve(ctx context.Context, id uint) error
}

func approveAll(ctx context.Context, comments approver, ids []uint) (failed int) {
	for _, id := range ids {
		switch err := comments.Approve(ctx, id); {
		case err == nil:
			fmt.Printf("approved %d\n", id)
		case errs.IsNotFound(err):
			fmt.Fprintf(os.Stderr, "comment %d not found\n", id)
			failed++
		default:
			fmt.Fprintf(os.Stderr, "comment %d: %v\n", id, err)
			failed++
		}
	}
	return failed
}

func parseIDs(s string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid comment id %q", part)
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no comment ids given")
	}
	return ids, nil
}

type diaryFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Diary, error)
}

type blogPostFinder interface {
	FindByID(ctx context.Context, id uint) (*models.BlogPost, error)
}

// pendingComment pairs a comment with a label for what it was left on.
type pendingComment struct {
	*models.Comment
	Target string
}

// describeOwners looks up the title of each comment's diary or blog post,
// including unpublished ones.
func describeOwners(ctx context.Context, diaries diaryFinder, posts blogPostFinder, comments []*models.Comment) []pendingComment {
	out := make([]pendingComment, 0, len(comments))
	for _, c := range comments {
		var target string
		switch {
		case c.DiaryID != nil:
			target = fmt.Sprintf("diary/%d", *c.DiaryID)
			if d, err := diaries.FindByID(ctx, *c.DiaryID); err == nil {
				target += " " + strconv.Quote(d.Title)
			}
		case c.BlogPostID != nil:
			target = fmt.Sprintf("blog/%d", *c.BlogPostID)
			if p, err := posts.FindByID(ctx, *c.BlogPostID); err == nil {
				target += " " + strconv.Quote(p.Title)
			}
		}
		out = append(out, pendingComment{Comment: c, Target: target})
	}
	return out
}

func printPending(w io.Writer, pending []pendingComment) {
	if len(pending) == 0 {
		fmt.Fprintln(w, "No comments awaiting approval")
		return
	}
	fmt.Fprintf(w, "%d comment(s) awaiting approval\n", len(pending))
	fmt.Fprintln(w, "==============================")
	for _, c := range pending {
		fmt.Fprintf(w, "#%d  %s  %s  %s\n", c.ID, c.Target, c.CreatedAt.Format(time.RFC3339), c.Name)
		fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(c.Message, "\n", "\n    "))
	}
}
