package appstate

import (
	"container/heap"
	"time"
)

// expiryItem schedules the removal of one notification.
type expiryItem struct {
	id int64
	at time.Time
}

// expiryQueue is a min-heap ordered by expiry time. One queue and one timer
// goroutine serve all notifications; entries whose notification was already
// removed pop as no-ops.
type expiryQueue []expiryItem

func (q expiryQueue) Len() int            { return len(q) }
func (q expiryQueue) Less(i, j int) bool  { return q[i].at.Before(q[j].at) }
func (q expiryQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *expiryQueue) Push(x interface{}) { *q = append(*q, x.(expiryItem)) }

func (q *expiryQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (q expiryQueue) peek() expiryItem { return q[0] }

// expiryLoop pops due entries and removes their notifications. It sleeps
// until the earliest deadline and wakes early when a new notification is
// scheduled ahead of it.
func (s *Store) expiryLoop() {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		s.mu.Lock()
		wait := time.Duration(-1)
		now := s.now()
		for s.expiry.Len() > 0 {
			next := s.expiry.peek()
			if next.at.After(now) {
				wait = next.at.Sub(now)
				break
			}
			heap.Pop(&s.expiry)
			s.removeNotificationLocked(next.id)
		}
		s.mu.Unlock()

		if wait < 0 {
			select {
			case <-s.kick:
			case <-s.done:
				return
			}
			continue
		}

		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-s.kick:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-s.done:
			timer.Stop()
			return
		}
	}
}

func (s *Store) scheduleExpiryLocked(id int64) {
	heap.Push(&s.expiry, expiryItem{id: id, at: s.now().Add(s.ttl)})
	select {
	case s.kick <- struct{}{}:
	default:
	}
}
