package reddit

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// listingURL maps a subreddit listing to its Atom feed. Hot is the
// subreddit's default listing; top and controversial accept a time
// filter.
func (f *Fetcher) listingURL(subreddit, sortBy, timeFilter string) string {
	base := strings.TrimRight(f.baseURL, "/")
	switch sortBy {
	case "new", "rising":
		return fmt.Sprintf("%s/r/%s/%s/.rss", base, subreddit, sortBy)
	case "top", "controversial":
		return fmt.Sprintf("%s/r/%s/%s/.rss?t=%s", base, subreddit, sortBy, url.QueryEscape(timeFilter))
	default:
		return fmt.Sprintf("%s/r/%s/.rss", base, subreddit)
	}
}

func (f *Fetcher) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}
	return feed, nil
}

func (f *Fetcher) feedPosts(ctx context.Context, subreddit, sortBy, timeFilter string, limit int) ([]Post, error) {
	feed, err := f.fetchFeed(ctx, f.listingURL(subreddit, sortBy, timeFilter))
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(posts) >= limit {
			break
		}
		posts = append(posts, postFromItem(item, subreddit))
	}
	return posts, nil
}

func (f *Fetcher) feedPost(ctx context.Context, postID string) (*Post, error) {
	feedURL := fmt.Sprintf("%s/comments/%s/.rss?limit=1", strings.TrimRight(f.baseURL, "/"), url.PathEscape(postID))
	feed, err := f.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	// The comment feed lists the submission itself as its t3 entry.
	for _, item := range feed.Items {
		if strings.HasPrefix(item.GUID, "t3_") {
			post := postFromItem(item, subredditFromItem(item))
			return &post, nil
		}
	}
	return nil, fmt.Errorf("post %s not present in feed", postID)
}

func (f *Fetcher) feedComments(ctx context.Context, postID string, limit int) ([]Comment, error) {
	feedURL := fmt.Sprintf("%s/comments/%s/.rss?limit=%d", strings.TrimRight(f.baseURL, "/"), url.PathEscape(postID), limit)
	feed, err := f.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	var comments []Comment
	for _, item := range feed.Items {
		// Skip the submission entry, keep the t1 comment entries.
		if strings.HasPrefix(item.GUID, "t3_") {
			continue
		}
		if len(comments) >= limit {
			break
		}
		comments = append(comments, commentFromItem(item))
	}
	return comments, nil
}

func (f *Fetcher) feedSearch(ctx context.Context, query, subreddit string, limit int) ([]Post, error) {
	base := strings.TrimRight(f.baseURL, "/")
	var feedURL string
	if subreddit != "" {
		feedURL = fmt.Sprintf("%s/r/%s/search.rss?q=%s&restrict_sr=1", base, subreddit, url.QueryEscape(query))
	} else {
		feedURL = fmt.Sprintf("%s/search.rss?q=%s", base, url.QueryEscape(query))
	}

	feed, err := f.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	financial := make(map[string]bool, len(FinancialSubreddits))
	for _, sub := range FinancialSubreddits {
		financial[sub] = true
	}

	var posts []Post
	for _, item := range feed.Items {
		if len(posts) >= limit {
			break
		}
		itemSub := subredditFromItem(item)
		// Site-wide searches keep financial subreddits only.
		if subreddit == "" && !financial[strings.ToLower(itemSub)] {
			continue
		}
		posts = append(posts, postFromItem(item, itemSub))
	}
	return posts, nil
}

func postFromItem(item *gofeed.Item, subreddit string) Post {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	return Post{
		ID:         trimKindPrefix(item.GUID),
		Title:      item.Title,
		Selftext:   stripHTML(content),
		URL:        item.Link,
		Subreddit:  subreddit,
		Author:     authorFromItem(item),
		CreatedUTC: itemTime(item),
		Permalink:  permalinkFromLink(item.Link),
	}
}

func commentFromItem(item *gofeed.Item) Comment {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	return Comment{
		ID:         trimKindPrefix(item.GUID),
		Body:       stripHTML(content),
		Author:     authorFromItem(item),
		CreatedUTC: itemTime(item),
		Permalink:  permalinkFromLink(item.Link),
	}
}

func itemTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Now()
}

func authorFromItem(item *gofeed.Item) string {
	if item.Author == nil || item.Author.Name == "" {
		return "[deleted]"
	}
	return strings.TrimPrefix(item.Author.Name, "/u/")
}

// subredditFromItem reads the subreddit from the entry's category term.
func subredditFromItem(item *gofeed.Item) string {
	if len(item.Categories) > 0 {
		return item.Categories[0]
	}
	return ""
}

// trimKindPrefix strips Reddit's thing-kind prefix (t3_ submissions,
// t1_ comments) from an entry ID.
func trimKindPrefix(id string) string {
	if i := strings.Index(id, "_"); i >= 0 && i <= 2 {
		return id[i+1:]
	}
	return id
}

func permalinkFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Path
}

// stripHTML extracts the readable text of a feed entry. Reddit wraps
// the markdown body in a div.md and appends submission boilerplate
// ("submitted by ... [link] [comments]"), so the body div is preferred
// when present.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	if md := doc.Find("div.md"); md.Length() > 0 {
		return strings.TrimSpace(md.Text())
	}
	return strings.TrimSpace(doc.Text())
}
