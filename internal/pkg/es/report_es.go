package es

import "time"

// ReportES 写入 ES 的报告文档
type ReportES struct {
	ID          uint64    `json:"id"`
	AuthorID    uint64    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Environment string    `json:"environment"`
	Strains     []string  `json:"strains"`
	StartDate   time.Time `json:"start_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
