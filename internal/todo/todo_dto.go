package todo

type SaveDailyPlanRequest struct {
	Date       string      `json:"date"`
	WorkStatus string      `json:"workStatus"`
	Tasks      []TaskEntry `json:"tasks"`
}

type ProgressResponse struct {
	Progress int `json:"progress"`
}
