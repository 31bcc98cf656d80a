package dto

type StatsSummaryDTO struct {
	Period   string  `json:"period"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Earnings float64 `json:"earnings"`
	Count    int64   `json:"count"`
}
