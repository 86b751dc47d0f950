package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/feed"
)

func Test_RootCmd_HasSubcommandsAndConfigFlag(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"bot", "migrate"}, names)

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, config.DefaultFile, flag.DefValue)
}

func Test_HubFeed_DeliversUntilClosed(t *testing.T) {
	hub := feed.NewHub()
	var got []string

	sub, err := hubFeed(hub).Subscribe("alice", func(ev expense.ChangeEvent) {
		got = append(got, ev.Record.ID)
	})
	require.NoError(t, err)

	hub.Publish(expense.ChangeEvent{Kind: expense.Insert, Record: expense.Record{ID: "1", Owner: "alice"}})
	sub.Close()
	hub.Publish(expense.ChangeEvent{Kind: expense.Insert, Record: expense.Record{ID: "2", Owner: "alice"}})

	assert.Equal(t, []string{"1"}, got)
}

func Test_HubFeed_RejectsEmptyOwner(t *testing.T) {
	_, err := hubFeed(feed.NewHub()).Subscribe("", func(expense.ChangeEvent) {})

	assert.ErrorIs(t, err, feed.ErrEmptyOwner)
}
