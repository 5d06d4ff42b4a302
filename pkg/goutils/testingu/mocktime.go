/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package testingu

import (
	"sync"
	"time"

	"github.com/voedger/defpred/pkg/goutils/timeu"
)

type IMockTime interface {
	timeu.ITime

	// fires each timer created by NewTimerChan() whose time has come
	Add(d time.Duration)
}

func NewMockTime(now time.Time) IMockTime {
	return &mockedTime{
		now:    now,
		timers: map[mockTimer]struct{}{},
	}
}

type mockedTime struct {
	sync.RWMutex
	now    time.Time
	timers map[mockTimer]struct{}
}

type mockTimer struct {
	c          chan time.Time
	expiration time.Time
}

func (t *mockedTime) Now() time.Time {
	t.RLock()
	defer t.RUnlock()
	return t.now
}

func (t *mockedTime) NewTimerChan(d time.Duration) <-chan time.Time {
	t.Lock()
	defer t.Unlock()
	mt := mockTimer{
		c:          make(chan time.Time, 1),
		expiration: t.now.Add(d),
	}
	t.timers[mt] = struct{}{}
	return mt.c
}

func (t *mockedTime) Add(d time.Duration) {
	t.Lock()
	defer t.Unlock()
	t.now = t.now.Add(d)
	for timer := range t.timers {
		if !t.now.Before(timer.expiration) {
			timer.c <- t.now
			delete(t.timers, timer)
		}
	}
}
