package yahoo

import (
	"context"
	"time"

	"yfmcp/internal/provider"
)

// newsEntry is one item of the search endpoint's news array.
type newsEntry struct {
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
	Type                string `json:"type"`
	Thumbnail           *struct {
		Resolutions []struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"resolutions"`
	} `json:"thumbnail"`
	RelatedTickers []string `json:"relatedTickers"`
}

// News fetches recent news for the ticker through the search endpoint.
func (c *Client) News(ctx context.Context, ticker string) ([]provider.NewsItem, error) {
	const op = "yahoo.news"

	var sr searchResponse
	err := c.get(ctx, op, "/v1/finance/search", map[string]string{
		"q":           ticker,
		"quotesCount": "0",
		"newsCount":   "10",
	}, &sr)
	if err != nil {
		return nil, err
	}

	items := make([]provider.NewsItem, 0, len(sr.News))
	for _, entry := range sr.News {
		item := provider.NewsItem{
			ContentType:    entry.Type,
			Title:          entry.Title,
			RelatedTickers: entry.RelatedTickers,
		}
		if entry.Publisher != "" {
			item.Provider = &provider.NewsProvider{DisplayName: entry.Publisher}
		}
		if entry.Link != "" {
			item.CanonicalURL = &provider.NewsURL{URL: entry.Link}
		}
		if entry.ProviderPublishTime > 0 {
			item.PubDate = time.Unix(entry.ProviderPublishTime, 0).UTC().Format(time.RFC3339)
		}
		if entry.Thumbnail != nil {
			thumb := &provider.Thumbnail{}
			for _, res := range entry.Thumbnail.Resolutions {
				thumb.Resolutions = append(thumb.Resolutions, provider.ThumbnailResolution{
					URL:    res.URL,
					Width:  res.Width,
					Height: res.Height,
				})
			}
			item.Thumbnail = thumb
		}
		items = append(items, item)
	}

	return items, nil
}
