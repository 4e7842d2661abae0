package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// secondsPerDay 一个日历日的秒数
const secondsPerDay = 86400

// ErrInvalidOffset 天数输入无法解析为非负整数
var ErrInvalidOffset = errors.New("天数格式错误")

// InvalidOffsetError 保留用户的原始输入，便于调用方忽略输入过程中的中间值
type InvalidOffsetError struct {
	Input string
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidOffset.Error(), e.Input)
}

func (e *InvalidOffsetError) Unwrap() error {
	return ErrInvalidOffset
}

// StartOfDay 取 t 所在时区当天零点
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfDayIn 取 t 在 loc 时区对应日期的零点
func StartOfDayIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return StartOfDay(t.In(loc))
}

// ParseDayOffset 解析用户输入的天数
func ParseDayOffset(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0, &InvalidOffsetError{Input: raw}
	}
	return n, nil
}

// DateFromDayOffset 由天数推算日期：开始日期零点 + dayOffset 个日历日
func DateFromDayOffset(reportStart time.Time, dayOffset int) time.Time {
	return StartOfDay(reportStart).AddDate(0, 0, dayOffset)
}

// DayOffsetFromDate 由日期推算天数，两端均按开始日期所在时区归零后做向下取整除法
// 早于开始日期时返回负数，不做截断，由调用方校验
func DayOffsetFromDate(reportStart, selected time.Time) int {
	start := StartOfDay(reportStart)
	sel := StartOfDayIn(selected, start.Location())

	// 以 UTC 重建日历日，避免夏令时切换产生 23/25 小时的日
	// 按 Unix 秒相减，time.Duration 超过约 292 年会饱和
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(sel.Year(), sel.Month(), sel.Day(), 0, 0, 0, 0, time.UTC)

	return floorDiv(b.Unix()-a.Unix(), secondsPerDay)
}

func floorDiv(a, b int64) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return int(q)
}
