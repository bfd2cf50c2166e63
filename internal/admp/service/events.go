package service

import (
	"sync"
	"time"

	"github.com/jimyag/admp/internal/admp/entity"
)

// eventBufferSize 每个订阅者的事件缓冲大小
const eventBufferSize = 64

// EventBroker 迁移事件的进程内发布/订阅
// 发布是非阻塞的：订阅者缓冲满时丢弃事件，不影响迁移执行
type EventBroker struct {
	mu   sync.RWMutex
	subs map[string]map[chan entity.MigrationEvent]struct{}
}

// NewEventBroker 创建事件代理
func NewEventBroker() *EventBroker {
	return &EventBroker{
		subs: make(map[string]map[chan entity.MigrationEvent]struct{}),
	}
}

// Subscribe 订阅指定迁移的事件
// 返回事件通道和取消函数，取消后通道会被关闭
func (b *EventBroker) Subscribe(migrationID string) (<-chan entity.MigrationEvent, func()) {
	ch := make(chan entity.MigrationEvent, eventBufferSize)

	b.mu.Lock()
	if b.subs[migrationID] == nil {
		b.subs[migrationID] = make(map[chan entity.MigrationEvent]struct{})
	}
	b.subs[migrationID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[migrationID], ch)
			if len(b.subs[migrationID]) == 0 {
				delete(b.subs, migrationID)
			}
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish 发布事件给迁移的所有订阅者
func (b *EventBroker) Publish(event entity.MigrationEvent) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().Format(time.RFC3339)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[event.MigrationID] {
		select {
		case ch <- event:
		default:
			// 慢消费者，丢弃
		}
	}
}
