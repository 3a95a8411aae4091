package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity keys the icon/color a message renders with.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const (
	// DefaultDuration 은 메시지가 화면에 머무는 기본 시간이다.
	DefaultDuration = 5 * time.Second
	// fadeOutGrace 는 표시 시간이 끝난 뒤 최종 제거까지의 짧은 여유다.
	fadeOutGrace = 300 * time.Millisecond
	// DefaultMaxVisible 은 동시에 유지하는 메시지 수의 상한이다.
	// 실패가 몰릴 때 큐가 무한히 자라지 않도록 가장 오래된 것부터 밀어낸다.
	DefaultMaxVisible = 8
)

// Message 는 일시적 상태 알림 하나다. 어떤 뷰의 생명주기에도 묶이지 않는다.
type Message struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Severity  Severity      `json:"severity"`
	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Center is the process-wide notification channel. Any component may enqueue
// without holding a reference to a display surface. Safe for concurrent use.
type Center struct {
	mu         sync.Mutex
	maxVisible int
	duration   time.Duration
	messages   []*Message
	timers     map[string]*time.Timer
}

func NewCenter(maxVisible int, duration time.Duration) *Center {
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{
		maxVisible: maxVisible,
		duration:   duration,
		timers:     make(map[string]*time.Timer),
	}
}

// Notify enqueues a message and returns its id. The message self-removes after
// its duration plus a short fade-out grace; Dismiss short-circuits the timer.
func (c *Center) Notify(text string, severity Severity) string {
	return c.NotifyWithDuration(text, severity, c.duration)
}

func (c *Center) NotifyWithDuration(text string, severity Severity, duration time.Duration) string {
	if duration <= 0 {
		duration = c.duration
	}
	msg := &Message{
		ID:        uuid.New().String(),
		Text:      text,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// 상한 초과 시 가장 오래된 메시지부터 즉시 퇴출한다.
	for len(c.messages) >= c.maxVisible {
		c.removeLocked(c.messages[0].ID)
	}

	c.messages = append(c.messages, msg)
	c.timers[msg.ID] = time.AfterFunc(duration+fadeOutGrace, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.removeLocked(msg.ID)
	})
	return msg.ID
}

// Dismiss removes a message before its timer fires. Returns false when the
// message already expired or never existed.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(id)
}

// Active 는 현재 표시 중인 메시지를 삽입 순서대로 스냅샷한다.
func (c *Center) Active() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, 0, len(c.messages))
	for _, m := range c.messages {
		out = append(out, *m)
	}
	return out
}

func (c *Center) removeLocked(id string) bool {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, m := range c.messages {
		if m.ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return true
		}
	}
	return false
}

// 뷰 핸들러에서 쓰는 단축 헬퍼. 원래 UI 의 success/error/warning 호출에 대응한다.
func (c *Center) Info(text string) string    { return c.Notify(text, SeverityInfo) }
func (c *Center) Success(text string) string { return c.Notify(text, SeveritySuccess) }
func (c *Center) Warning(text string) string { return c.Notify(text, SeverityWarning) }
func (c *Center) Error(text string) string   { return c.Notify(text, SeverityError) }
