package feed

import "time"

// Clock источник текущего времени. Классификатор сам время не читает.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock всегда возвращает одно и то же время; для тестов и повторной
// классификации снимка.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
