package utils

import (
	"fmt"
	"time"
)

// MySelfTime 把Unix时间戳（秒）拆成业务上常用的几个分量
type MySelfTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

func ParseTimestamp(timestamp int64) (t MySelfTime) {
	date := time.Unix(timestamp, 0)
	t.Year = date.Year()
	t.Month = int(date.Month())
	t.Day = date.Day()
	t.Hour = date.Hour()
	t.Minute = date.Minute()
	return
}

// FormatDate 格式化日期为 MM-DD
func FormatDate(timestamp int64) string {
	t := ParseTimestamp(timestamp)
	return fmt.Sprintf("%02d-%02d", t.Month, t.Day)
}

// FormatTime 格式化时间为 HH:mm
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatDateForAPI 格式化日期为接口需要的 yyyyMMdd
func FormatDateForAPI(timestamp int64) string {
	t := ParseTimestamp(timestamp)
	return fmt.Sprintf("%d%02d%02d", t.Year, t.Month, t.Day)
}

// FormatFullDate 格式化日期为 yyyy-MM-dd
func FormatFullDate(timestamp int64) string {
	t := ParseTimestamp(timestamp)
	return fmt.Sprintf("%d-%02d-%02d", t.Year, t.Month, t.Day)
}

// MidnightUnix 当天零点的时间戳
func MidnightUnix(timestamp int64) int64 {
	t := ParseTimestamp(timestamp)
	return time.Date(t.Year, time.Month(t.Month), t.Day, 0, 0, 0, 0, time.Local).Unix()
}

// GetAdjacentMonth 计算相邻月份的yearmo，offset为月份偏移量
func GetAdjacentMonth(yearmo string, offset int) string {
	t, err := time.ParseInLocation("200601", yearmo, time.Local)
	if err != nil {
		return yearmo
	}
	return t.AddDate(0, offset, 0).Format("200601")
}
