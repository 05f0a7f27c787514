// Wire types of the public HTTP API. Shared by the server, the terminal client and tests.
package rest

// ComparisonEntry One platform row of a search result
type ComparisonEntry struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Benefit  string `json:"benefit"`
	Color    string `json:"color"`
}

// HistoryQuery Query parameters of GET /api/history
type HistoryQuery struct {
	Limit int `validate:"min=1,max=100"`
}

// HistoryRecord One recorded search
type HistoryRecord struct {
	Keyword          string `json:"keyword"`
	CheapestPlatform string `json:"cheapestPlatform,omitempty"`
	MinPrice         int64  `json:"minPrice"`
	SearchedAt       string `json:"searchedAt"`
}

// Error Error model
type Error struct {
	// Error Human readable error message
	Error string `json:"error"`

	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Description for display
	Message string `json:"message"`

	// SupportID Trace ID of the failed request
	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
