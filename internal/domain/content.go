package domain

import "time"

// Content 是 news/matches/players 这类内容条目的公共口径，
// 泛型 repo/service 通过它读写 id 和时间戳。
type Content interface {
	ContentID() string
	SetContentID(id string)
	StampCreated(t time.Time)
	StampUpdated(t time.Time)
}

type ContentMeta struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *ContentMeta) ContentID() string        { return m.ID }
func (m *ContentMeta) SetContentID(id string)   { m.ID = id }
func (m *ContentMeta) StampCreated(t time.Time) { m.CreatedAt = t }
func (m *ContentMeta) StampUpdated(t time.Time) { m.UpdatedAt = t }

type NewsPost struct {
	ContentMeta
	Title   string `gorm:"size:191" json:"title"`
	Date    string `gorm:"size:32" json:"date"`
	Excerpt string `gorm:"size:512" json:"excerpt"`
	Image   string `gorm:"size:255" json:"image"`
}

func (NewsPost) TableName() string { return "news_posts" }

type Match struct {
	ContentMeta
	Home     string `gorm:"size:64" json:"home"`
	Opponent string `gorm:"size:64" json:"opponent"`
	Location string `gorm:"size:16" json:"location"` // "Home"/"Away"
	Date     string `gorm:"size:32" json:"date"`
	Kickoff  string `gorm:"size:8" json:"time"`
}

func (Match) TableName() string { return "matches" }

type Player struct {
	ContentMeta
	Name     string `gorm:"size:64" json:"name"`
	Position string `gorm:"size:32" json:"position"`
	Number   int    `json:"number"`
	Image    string `gorm:"size:255" json:"image"`
}

func (Player) TableName() string { return "players" }
