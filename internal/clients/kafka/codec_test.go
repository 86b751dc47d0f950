package kafka

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_Codec_InsertKeepsAllFields(t *testing.T) {
	ev := expense.ChangeEvent{
		Kind: expense.Insert,
		Record: expense.Record{
			ID:          "id-1",
			Description: "Train ticket",
			Amount:      42.5,
			Currency:    currency.CHF,
			Category:    expense.Transportation,
			Date:        civil.Date{Year: 2024, Month: time.February, Day: 29},
			Owner:       "alice",
			CreatedAt:   time.Date(2024, 2, 29, 8, 30, 0, 123, time.UTC),
		},
	}

	data, err := encodeEvent(ev)
	require.NoError(t, err)
	got, err := decodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, ev, got)
}

func Test_Codec_DeleteCarriesOnlyIdentity(t *testing.T) {
	ev := expense.ChangeEvent{Kind: expense.Delete, Record: expense.Record{ID: "id-2", Owner: "bob", Description: "ignored"}}

	data, err := encodeEvent(ev)
	require.NoError(t, err)
	got, err := decodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, expense.ChangeEvent{Kind: expense.Delete, Record: expense.Record{ID: "id-2", Owner: "bob"}}, got)
}

func Test_Codec_RejectsMalformedEvents(t *testing.T) {
	_, err := decodeEvent([]byte{0xff, 0x01})
	assert.Error(t, err)

	noOwner, _ := structpb.NewStruct(map[string]interface{}{fieldKind: "insert", fieldID: "x"})
	data, _ := proto.Marshal(noOwner)
	_, err = decodeEvent(data)
	assert.Error(t, err)

	badKind, _ := structpb.NewStruct(map[string]interface{}{fieldKind: "update", fieldID: "x", fieldOwner: "o"})
	data, _ = proto.Marshal(badKind)
	_, err = decodeEvent(data)
	assert.Error(t, err)
}

type sinkFunc func(expense.ChangeEvent)

func (f sinkFunc) Publish(ev expense.ChangeEvent) { f(ev) }

func Test_Consumer_ForwardsDecodedEvents(t *testing.T) {
	var got []expense.ChangeEvent
	c := &Consumer{sink: sinkFunc(func(ev expense.ChangeEvent) { got = append(got, ev) })}

	data, err := encodeEvent(expense.ChangeEvent{Kind: expense.Delete, Record: expense.Record{ID: "1", Owner: "o"}})
	require.NoError(t, err)
	c.handle(&sarama.ConsumerMessage{Key: []byte("o"), Value: data})
	c.handle(&sarama.ConsumerMessage{Key: []byte("o"), Value: []byte("garbage")})

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].Record.ID)
}
