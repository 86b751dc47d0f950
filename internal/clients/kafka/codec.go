package kafka

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	fieldKind        = "kind"
	fieldID          = "id"
	fieldDescription = "description"
	fieldAmount      = "amount"
	fieldCurrency    = "currency"
	fieldCategory    = "category"
	fieldDate        = "date"
	fieldOwner       = "owner"
	fieldCreatedAt   = "created_at"
)

func encodeEvent(ev expense.ChangeEvent) ([]byte, error) {
	fields := map[string]interface{}{
		fieldKind:  string(ev.Kind),
		fieldID:    ev.Record.ID,
		fieldOwner: ev.Record.Owner,
	}
	if ev.Kind == expense.Insert {
		fields[fieldDescription] = ev.Record.Description
		fields[fieldAmount] = ev.Record.Amount
		fields[fieldCurrency] = ev.Record.Currency
		fields[fieldCategory] = ev.Record.Category
		fields[fieldDate] = ev.Record.Date.String()
		fields[fieldCreatedAt] = ev.Record.CreatedAt.UTC().Format(time.RFC3339Nano)
	}

	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "encode change event")
	}
	return proto.Marshal(msg)
}

func decodeEvent(data []byte) (expense.ChangeEvent, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(data, &msg); err != nil {
		return expense.ChangeEvent{}, errors.Wrap(err, "decode change event")
	}
	f := msg.GetFields()
	str := func(key string) string { return f[key].GetStringValue() }

	ev := expense.ChangeEvent{
		Kind: expense.ChangeKind(str(fieldKind)),
		Record: expense.Record{
			ID:    str(fieldID),
			Owner: str(fieldOwner),
		},
	}
	if ev.Record.ID == "" || ev.Record.Owner == "" {
		return expense.ChangeEvent{}, errors.New("change event without id or owner")
	}

	switch ev.Kind {
	case expense.Delete:
		return ev, nil
	case expense.Insert:
	default:
		return expense.ChangeEvent{}, errors.Errorf("unknown change kind %q", ev.Kind)
	}

	date, err := civil.ParseDate(str(fieldDate))
	if err != nil {
		return expense.ChangeEvent{}, errors.Wrap(err, "decode change event date")
	}
	ev.Record.Description = str(fieldDescription)
	ev.Record.Amount = f[fieldAmount].GetNumberValue()
	ev.Record.Currency = str(fieldCurrency)
	ev.Record.Category = str(fieldCategory)
	ev.Record.Date = date
	if created := str(fieldCreatedAt); created != "" {
		ev.Record.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return expense.ChangeEvent{}, errors.Wrap(err, "decode change event timestamp")
		}
	}
	return ev, nil
}
