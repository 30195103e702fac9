package util

import (
	"strconv"
)

// MustParseInt 将字符串转换为整数，解析失败时返回 -1（引擎中无负数ID）
func MustParseInt(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return id
}

// ParseIntOr 解析失败时返回给定缺省值
func ParseIntOr(s string, def int) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return id
}
