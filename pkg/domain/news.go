package domain

import "time"

// Article is a news item relayed by the news proxy.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt time.Time     `json:"publishedAt"`
}

// ArticleSource names the outlet of an article.
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewsSource is a publisher that can be used to filter articles.
type NewsSource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

// NewsFeed is the article list returned by /api/news.
type NewsFeed struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// SourceList is the response of /api/news/sources.
type SourceList struct {
	Status  string       `json:"status"`
	Sources []NewsSource `json:"sources"`
}
