package models

// NewsArticle is a single full-story news item. Items of any other content
// kind are dropped during normalization and never reach this type.
type NewsArticle struct {
	Title          string   `json:"title"`
	Publisher      *string  `json:"publisher"`
	Link           *string  `json:"link"`
	PublishTime    *string  `json:"publish_time"`
	Type           *string  `json:"type"`
	Thumbnail      *string  `json:"thumbnail"`
	RelatedTickers []string `json:"related_tickers"`
}

// NewsListResponse wraps the filtered article list for one ticker.
type NewsListResponse struct {
	Ticker   string        `json:"ticker"`
	Articles []NewsArticle `json:"articles"`
	Count    int           `json:"count"`
}

// NewNewsListResponse derives Count from the article slice.
func NewNewsListResponse(ticker string, articles []NewsArticle) *NewsListResponse {
	if articles == nil {
		articles = []NewsArticle{}
	}
	return &NewsListResponse{Ticker: ticker, Articles: articles, Count: len(articles)}
}
