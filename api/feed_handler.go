package api

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rs/zerolog/log"
)

const feedItems = 20

// SiteInfo describes the public front end that feeds link to.
type SiteInfo struct {
	URL         string
	Name        string
	Description string
}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category,omitempty"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`

	published time.Time
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type feedHandler struct {
	responder Responder
	site      SiteInfo
	diaries   diaryStore
	posts     blogPostStore
}

func newFeedHandler(site SiteInfo, diaries diaryStore, posts blogPostStore) feedHandler {
	return feedHandler{
		responder: NewResponder(log.With().Str("handlerName", "feedHandler").Logger()),
		site:      site,
		diaries:   diaries,
		posts:     posts,
	}
}

func (h feedHandler) link(section, slug string) string {
	u, err := url.JoinPath(h.site.URL, section, slug)
	if err != nil {
		return h.site.URL + "/" + section + "/" + slug
	}
	return u
}

// rss merges the newest published diaries and blog posts into one feed.
// @Summary RSS feed
// @Tags Feeds
// @Produce xml
// @Success 200 {object} rssXML
// @Failure 500 {object} ErrorResponse
// @Router /rss.xml [get]
func (h feedHandler) rss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := database.Page{Limit: feedItems}

		diaries, err := h.diaries.FindAll(ctx, database.DiaryFilter{Page: page})
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to build feed"}, err))
			return
		}
		posts, err := h.posts.FindAll(ctx, database.BlogPostFilter{Page: page})
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to build feed"}, err))
			return
		}

		items := make([]rssItem, 0, len(diaries)+len(posts))
		for _, d := range diaries {
			link := h.link("diaries", d.Slug)
			items = append(items, rssItem{
				Title:       d.Title,
				Link:        link,
				Description: d.Excerpt,
				Categories:  append([]string{d.Region}, d.Tags...),
				PubDate:     d.CreatedAt.UTC().Format(time.RFC1123Z),
				GUID:        link,
				published:   d.CreatedAt,
			})
		}
		for _, p := range posts {
			link := h.link("blog", p.Slug)
			items = append(items, rssItem{
				Title:       p.Title,
				Link:        link,
				Description: p.Excerpt,
				Categories:  append([]string{p.Category}, p.Tags...),
				PubDate:     p.CreatedAt.UTC().Format(time.RFC1123Z),
				GUID:        link,
				published:   p.CreatedAt,
			})
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].published.After(items[j].published) })
		if len(items) > feedItems {
			items = items[:feedItems]
		}

		h.responder.WriteXML(w, "application/rss+xml; charset=utf-8", rssXML{
			Version: "2.0",
			Channel: rssChannel{
				Title:       h.site.Name,
				Link:        h.site.URL,
				Description: h.site.Description,
				Items:       items,
			},
		})
	}
}

// sitemap lists every published diary and blog post.
// @Summary Sitemap
// @Tags Feeds
// @Produce xml
// @Success 200 {object} sitemapURLSet
// @Failure 500 {object} ErrorResponse
// @Router /sitemap.xml [get]
func (h feedHandler) sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urls := []sitemapURL{
			{Loc: h.site.URL},
			{Loc: h.site.URL + "/diaries"},
			{Loc: h.site.URL + "/blog"},
			{Loc: h.site.URL + "/gallery"},
		}

		err := h.eachPage(r.Context(), func(page database.Page) (int, error) {
			diaries, err := h.diaries.FindAll(r.Context(), database.DiaryFilter{Page: page})
			for _, d := range diaries {
				urls = append(urls, sitemapURL{Loc: h.link("diaries", d.Slug), LastMod: d.UpdatedAt.UTC().Format("2006-01-02")})
			}
			return len(diaries), err
		})
		if err == nil {
			err = h.eachPage(r.Context(), func(page database.Page) (int, error) {
				posts, err := h.posts.FindAll(r.Context(), database.BlogPostFilter{Page: page})
				for _, p := range posts {
					urls = append(urls, sitemapURL{Loc: h.link("blog", p.Slug), LastMod: p.UpdatedAt.UTC().Format("2006-01-02")})
				}
				return len(posts), err
			})
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to build sitemap"}, err))
			return
		}

		h.responder.WriteXML(w, "application/xml; charset=utf-8", sitemapURLSet{
			XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs:  urls,
		})
	}
}

// eachPage calls fetch with successive full-size pages until one comes back short.
func (h feedHandler) eachPage(ctx context.Context, fetch func(database.Page) (int, error)) error {
	for offset := 0; ; offset += database.MaxPageSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := fetch(database.Page{Limit: database.MaxPageSize, Offset: offset})
		if err != nil {
			return err
		}
		if n < database.MaxPageSize {
			return nil
		}
	}
}
