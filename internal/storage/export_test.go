package storage

import "time"

func (s *Storage) SetClock(now func() time.Time) {
	s.timeNow = now
}
