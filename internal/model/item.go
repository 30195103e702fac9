package model

// Item 题库条目，a/b 为IRT判别度与难度参数
type Item struct {
	ID              int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Domain          string  `gorm:"index" json:"domain"`
	Discrimination  float64 `json:"a"`
	Difficulty      float64 `json:"b"`
	ExpectedMinutes float64 `json:"tExpectedMin"`
}

func (Item) TableName() string {
	return "items"
}
