/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package testingu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMockTime(t *testing.T) {
	require := require.New(t)
	start := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	mt := NewMockTime(start)
	require.Equal(start, mt.Now())

	c := mt.NewTimerChan(time.Minute)
	mt.Add(30 * time.Second)
	select {
	case <-c:
		t.Fatal("timer fired too early")
	default:
	}

	mt.Add(30 * time.Second)
	require.Equal(start.Add(time.Minute), <-c)
	require.Equal(start.Add(time.Minute), mt.Now())
}
