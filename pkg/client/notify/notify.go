package notify

import (
	"sync"

	"github.com/gotomicro/ego/core/elog"
)

// Notifier 全局的提示框
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

const (
	MsgGeneric     = "出了点问题，请稍后再试"
	MsgDuplicate   = "请勿重复发表相同的评论"
	MsgRateLimited = "操作过于频繁，请稍后再试"
	MsgSignInFirst = "请先登录"
)

// Logger 只把提示写进日志
type Logger struct {
	logger *elog.Component
}

func NewLogger(logger *elog.Component) *Logger {
	if logger == nil {
		logger = elog.DefaultLogger
	}
	return &Logger{logger: logger}
}

func (l *Logger) Success(msg string) {
	l.logger.Info("toast", elog.String("level", "success"), elog.String("msg", msg))
}

func (l *Logger) Error(msg string) {
	l.logger.Warn("toast", elog.String("level", "error"), elog.String("msg", msg))
}

type Toast struct {
	Level string
	Msg   string
}

// Recorder 在内存里记录所有的提示
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Success(msg string) {
	r.add("success", msg)
}

func (r *Recorder) Error(msg string) {
	r.add("error", msg)
}

func (r *Recorder) add(level, msg string) {
	r.mu.Lock()
	r.toasts = append(r.toasts, Toast{Level: level, Msg: msg})
	r.mu.Unlock()
}

func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Toast, len(r.toasts))
	copy(res, r.toasts)
	return res
}

func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []string
	for _, t := range r.toasts {
		if t.Level == "error" {
			res = append(res, t.Msg)
		}
	}
	return res
}
