package normalize

import (
	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// storyContentType marks items that are full articles; every other content
// kind (video, link-only, ...) is dropped before counting.
const storyContentType = "STORY"

// News filters provider items down to full stories and extracts the nested
// publisher, link and thumbnail fields.
func News(ticker string, items []provider.NewsItem) *models.NewsListResponse {
	articles := make([]models.NewsArticle, 0, len(items))
	for _, item := range items {
		if item.ContentType != storyContentType {
			continue
		}

		article := models.NewsArticle{
			Title:          item.Title,
			PublishTime:    strOrNil(item.PubDate),
			Type:           strOrNil(item.ContentType),
			RelatedTickers: item.RelatedTickers,
		}
		if item.Provider != nil {
			article.Publisher = strOrNil(item.Provider.DisplayName)
		}
		if item.CanonicalURL != nil {
			article.Link = strOrNil(item.CanonicalURL.URL)
		}
		// First resolution wins; an empty resolution list means no thumbnail.
		if item.Thumbnail != nil && len(item.Thumbnail.Resolutions) > 0 {
			article.Thumbnail = strOrNil(item.Thumbnail.Resolutions[0].URL)
		}
		articles = append(articles, article)
	}
	return models.NewNewsListResponse(ticker, articles)
}
