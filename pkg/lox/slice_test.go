package lox_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"deal_feed/pkg/lox"
)

func TestMap(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"1", "2"}, lox.Map([]int{1, 2}, strconv.Itoa))
	rq.Empty(lox.Map([]int(nil), strconv.Itoa))
}

func TestPtrDeref(t *testing.T) {
	rq := require.New(t)

	rq.Nil(lox.Ptr(""))
	rq.Equal("shop", *lox.Ptr("shop"))
	rq.Equal(7, lox.Deref(lox.Ptr(7), 0))
	rq.Equal(-1, lox.Deref((*int)(nil), -1))
}
