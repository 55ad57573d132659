package utils

import (
	"strconv"
	"strings"
	"time"
)

const defaultTimeFormat = "2006-01-02 15:04:05"

func ConvertStringToInt64(v string) (int64, error) {
	if res, err := strconv.ParseInt(v, 10, 64); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}

func FormatTime(t time.Time) string {
	return t.Format(defaultTimeFormat)
}

func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(defaultTimeFormat)
}

// FileExt 返回小写的文件扩展名 不含点号
func FileExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
