package timeline

import "time"

// PostForm 发帖表单的显式状态
type PostForm struct {
	Date             time.Time `json:"date"`
	GrowDay          int       `json:"growDay"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	GrowStage        string    `json:"growStage"`
	LightHoursPerDay *int      `json:"lightHoursPerDay"`
	Images           []string  `json:"images"`
}

// Session 单次编辑会话，保证表单中 Date 与 GrowDay 互相一致，后一次编辑生效
// 不支持并发访问
type Session struct {
	start time.Time
	form  PostForm
}

// NewSession 以报告开始日期创建表单会话；表单日期为空时取开始日期
func NewSession(reportStart time.Time, form PostForm) *Session {
	s := &Session{start: StartOfDay(reportStart), form: form}
	if s.form.Date.IsZero() {
		s.form.Date = s.start
	} else {
		s.form.Date = StartOfDayIn(s.form.Date, s.start.Location())
	}
	s.form.GrowDay = DayOffsetFromDate(s.start, s.form.Date)
	return s
}

// Start 报告开始日期（零点）
func (s *Session) Start() time.Time {
	return s.start
}

// EditDate 用户修改日期，归零到开始日期所在时区后重新计算天数
func (s *Session) EditDate(date time.Time) {
	s.form.Date = StartOfDayIn(date, s.start.Location())
	s.form.GrowDay = DayOffsetFromDate(s.start, s.form.Date)
}

// EditDayOffset 用户修改天数，重新计算日期
// 输入过程中的非法中间值直接忽略并保留原状态，返回是否生效
func (s *Session) EditDayOffset(raw string) bool {
	n, err := ParseDayOffset(raw)
	if err != nil {
		return false
	}
	s.form.GrowDay = n
	s.form.Date = DateFromDayOffset(s.start, n)
	return true
}

// Form 返回当前表单的副本
func (s *Session) Form() PostForm {
	form := s.form
	if s.form.Images != nil {
		form.Images = append([]string(nil), s.form.Images...)
	}
	return form
}
