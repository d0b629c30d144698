package utils

import "github.com/google/uuid"

// NewID 生成集合内唯一的字符串主键
func NewID() string { return uuid.NewString() }
