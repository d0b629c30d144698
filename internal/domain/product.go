package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// 商品分类（约定，不强校验）
const (
	CategoryJerseys     = "jerseys"
	CategoryTraining    = "training"
	CategoryAccessories = "accessories"
	CategoryEquipment   = "equipment"
)

type Product struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"size:128" json:"name"`
	Price       float64    `json:"price"`
	Category    string     `gorm:"size:32;index" json:"category"`
	Description string     `gorm:"size:512" json:"description"`
	Image       string     `gorm:"size:255" json:"image"`
	Stock       int        `json:"stock"`
	Sizes       StringList `gorm:"type:text" json:"sizes"`
	Featured    bool       `gorm:"index" json:"featured"`
	// 插入序：纳秒时间戳。mysql 的 datetime(3) 只有毫秒精度，
	// 目录排序不能依赖 created_at
	Seq       int64     `gorm:"autoCreateTime:nano;index" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// Snapshot 冻结加购/下单那一刻的商品字段，之后的编辑/删除不回溯
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
	}
}

type ProductSnapshot struct {
	Name     string  `gorm:"size:128" json:"name"`
	Price    float64 `json:"price"`
	Image    string  `gorm:"size:255" json:"image"`
	Category string  `gorm:"size:32" json:"category"`
}

// StringList 以 JSON 文本落库（sizes 这类小数组不值得拆表）
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("StringList: unsupported scan source")
}
