package database

import (
	"context"
	"strings"

	"github.com/rpupo63/travel-blog-backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SearchLimit caps the results returned per content kind.
const SearchLimit = 10

var diaryFullSearchColumns = []string{"title", "excerpt", "location", "journey"}

type SearchResults struct {
	Diaries   []*models.Diary    `json:"diaries"`
	BlogPosts []*models.BlogPost `json:"blogPosts"`
}

type SearchRepo struct {
	db *gorm.DB
}

func NewSearchRepo(db *gorm.DB) *SearchRepo {
	return &SearchRepo{db}
}

// SearchContent looks for term in published diaries and blog posts. Both
// queries run at once; either failing fails the whole search.
func (r *SearchRepo) SearchContent(ctx context.Context, term string) (*SearchResults, error) {
	results := &SearchResults{
		Diaries:   make([]*models.Diary, 0),
		BlogPosts: make([]*models.BlogPost, 0),
	}
	if strings.TrimSpace(term) == "" {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tx := r.db.WithContext(gctx).Model(&models.Diary{}).Where("published = ?", true)
		tx = newestFirst(containsAny(tx, term, diaryFullSearchColumns...)).Limit(SearchLimit)
		return classify("search diaries", tx.Find(&results.Diaries).Error)
	})
	g.Go(func() error {
		tx := r.db.WithContext(gctx).Model(&models.BlogPost{}).Where("published = ?", true)
		tx = newestFirst(containsAny(tx, term, blogSearchColumns...)).Limit(SearchLimit)
		return classify("search blog posts", tx.Find(&results.BlogPosts).Error)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
