package pipeline

type ScheduledTask struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	PublishDate string `json:"publish_date"`
	PublishTime string `json:"publish_time"`
	RunID       string `json:"run_id"`
	Conflict    bool   `json:"conflict"`
}
