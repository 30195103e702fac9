package model

// Recommendation 单条推荐，每次请求重新计算，不落库
type Recommendation struct {
	Domain          string  `json:"domain"`
	ItemID          int     `json:"itemId"`
	Discrimination  float64 `json:"a"`
	Difficulty      float64 `json:"b"`
	ThetaD          float64 `json:"thetaD"`
	Gap             float64 `json:"gap"`
	PSuccess        float64 `json:"pSuccess"`
	ExpectedMinutes float64 `json:"tExpectedMin"`
}
