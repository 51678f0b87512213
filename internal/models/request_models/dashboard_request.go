package request_models

type AnalyticsQuery struct {
	From        string `form:"from"`
	To          string `form:"to"`
	Granularity string `form:"granularity"`
	Limit       int    `form:"limit"`
}
