package config

import "time"

type Rakuten struct {
	ApplicationID string        `env:"RAKUTEN_APP_ID" json:"-"`
	AffiliateID   string        `env:"RAKUTEN_AFFILIATE_ID" json:"-"`
	BaseURL       string        `env:"RAKUTEN_BASE_URL" envDefault:"https://app.rakuten.co.jp" validate:"url"`
	Timeout       time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

type Yahoo struct {
	ClientID string        `env:"YAHOO_CLIENT_ID" json:"-"`
	BaseURL  string        `env:"YAHOO_BASE_URL" envDefault:"https://shopping.yahooapis.jp" validate:"url"`
	Timeout  time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

type Amazon struct {
	TrackingID string `env:"AMAZON_TRACKING_ID"`
}

type Aggregator struct {
	FailureMode string `env:"AGGREGATOR_FAILURE_MODE" envDefault:"isolated" validate:"oneof=isolated all-or-nothing"`
}
