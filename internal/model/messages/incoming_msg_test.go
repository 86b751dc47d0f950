package messages

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/feed"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/session"
	"max.ks1230/expense-tracker/internal/model/storage"
)

const chat = int64(123)

var alice = user.Identity{OwnerID: "alice", Email: "alice@example.com", DisplayName: "Alice"}

type fixture struct {
	sender   *mock.MessageSenderMock
	auth     *mock.AuthServiceMock
	sessions *session.Manager
	handler  *HandlerService
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)

	hub := feed.NewHub()
	store := storage.NewInMemStorage(hub)
	sessions := session.NewManager(store, session.FeedFunc(func(owner string, onChange func(expense.ChangeEvent)) (session.Subscription, error) {
		sub, err := hub.Subscribe(owner, onChange)
		if err != nil {
			return nil, err
		}
		return sub, nil
	}), currency.MKD)
	t.Cleanup(sessions.Close)

	f := &fixture{
		sender:   mock.NewMessageSenderMock(m),
		auth:     mock.NewAuthServiceMock(m),
		sessions: sessions,
	}
	f.auth.RestoreMock.
		Inspect(func(_ context.Context, chatID int64) {
			assert.Equal(t, chat, chatID)
		}).
		Return(nil)
	f.service = NewService(f.sender, f.auth, sessions)
	f.handler = f.service.handler.(*HandlerService)
	f.handler.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) signIn(t *testing.T) {
	require.NoError(t, f.sessions.OnIdentityChange(context.Background(), chat, alice))
}

func (f *fixture) signedOut() {
	f.auth.CurrentMock.Expect(chat).Return(user.Identity{}, false)
}

func expectCredentials(t *testing.T, wantEmail, wantPassword string) func(context.Context, int64, string, string) {
	return func(_ context.Context, chatID int64, email, password string) {
		assert.Equal(t, chat, chatID)
		assert.Equal(t, wantEmail, email)
		assert.Equal(t, wantPassword, password)
	}
}

func (f *fixture) reply(t *testing.T, text string) string {
	resp, err := f.handler.HandleMessage(context.Background(), text, chat)
	require.NoError(t, err)
	return resp
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	f := newFixture(t)
	f.sender.SendMessageMock.
		Expect(helloMessage, chat).
		Return(nil)

	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: "/start", ChatID: chat})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpHint(t *testing.T) {
	f := newFixture(t)
	f.sender.SendMessageMock.
		Expect(dontUnderstandMessage, chat).
		Return(nil)

	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: "/none", ChatID: chat})

	assert.NoError(t, err)
}

func Test_OnHandlerError_ShouldApologizeAndReturnError(t *testing.T) {
	f := newFixture(t)
	f.signedOut()
	f.auth.SignInMock.
		Inspect(expectCredentials(t, "a@b.c", "pw")).
		Return(user.Identity{}, errors.New("timeout"))
	f.sender.SendMessageMock.
		Expect(somethingWrongMessage+authFailedMessage, chat).
		Return(nil)

	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: "/login a@b.c pw", ChatID: chat})

	assert.Error(t, err)
}

func Test_OnExpenseCommandsSignedOut_ShouldAskToSignIn(t *testing.T) {
	f := newFixture(t)

	for _, cmd := range []string{"/add 1 MKD food - x", "/list", "/delete 1", "/stats"} {
		assert.Equal(t, signInFirstMessage, f.reply(t, cmd), cmd)
	}
}

func Test_OnLogin_ShouldGreetByLabel(t *testing.T) {
	f := newFixture(t)
	f.signedOut()
	f.auth.SignInMock.
		Inspect(expectCredentials(t, "alice@example.com", "pw")).
		Return(alice, nil)

	assert.Equal(t, "Welcome, Alice!", f.reply(t, "/login alice@example.com pw"))
}

func Test_OnLoginRejected_ShouldShowMappedMessage(t *testing.T) {
	f := newFixture(t)
	f.signedOut()
	f.auth.SignUpMock.
		Inspect(expectCredentials(t, "a@b.c", "1")).
		Return(user.Identity{}, &auth.Error{Code: "WEAK_PASSWORD", Message: "Password should be at least 6 characters."})

	assert.Equal(t, "Password should be at least 6 characters.", f.reply(t, "/signup a@b.c 1"))
	assert.Equal(t, incorrectUsageMessage, f.reply(t, "/signup only-email"))
}

func Test_OnSignedInButListFailed_ShouldStillGreet(t *testing.T) {
	f := newFixture(t)
	f.signedOut()
	f.auth.SignInMock.Return(alice, errors.New("db down"))

	assert.Equal(t, "Welcome, Alice!\n"+cannotGetExpensesMessage, f.reply(t, "/login a@b.c pw"))
}

func Test_OnGoogle_ShouldLinkThenSignInOrCancel(t *testing.T) {
	f := newFixture(t)
	f.signedOut()
	f.auth.
		FederatedURLMock.Expect(chat).Return("https://accounts.google.com/o").
		SignInWithFederatedMock.Set(func(_ context.Context, chatID int64, code string) (user.Identity, error) {
			assert.Equal(t, chat, chatID)
			if code == "cancel" {
				return user.Identity{}, auth.ErrCanceled
			}
			assert.Equal(t, "code-1", code)
			return alice, nil
		})

	assert.Contains(t, f.reply(t, "/google"), "https://accounts.google.com/o")
	assert.Equal(t, canceledMessage, f.reply(t, "/google cancel"))
	assert.Equal(t, "Welcome, Alice!", f.reply(t, "/google code-1"))
}

func Test_OnLogout_ShouldSignOut(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)
	f.auth.
		CurrentMock.Expect(chat).Return(alice, true).
		SignOutMock.
		Inspect(func(_ context.Context, chatID int64) {
			assert.Equal(t, chat, chatID)
		}).
		Return(nil)

	assert.Equal(t, signedOutMessage, f.reply(t, "/logout"))
	assert.Equal(t, uint64(1), f.auth.SignOutAfterCounter())
}

func Test_OnMe_ShouldShowProfile(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)
	f.auth.CurrentMock.Expect(chat).Return(alice, true)

	assert.Equal(t, "Signed in as Alice\nEmail: alice@example.com", f.reply(t, "/me"))
}

func Test_OnAdd_ShouldStoreAndList(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	resp := f.reply(t, "/add 3.456 eur food 2024-03-10 Coffee and cake")
	assert.True(t, strings.HasPrefix(resp, "Added Coffee and cake: €3.46 (Food, 2024-03-10)"), resp)

	records := f.sessions.Get(chat).Expenses.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 3.46, records[0].Amount)
	assert.Equal(t, "alice", records[0].Owner)

	list := f.reply(t, "/list")
	assert.Contains(t, list, "2024-03-10  Coffee and cake  €3.46  [Food]")
	assert.Contains(t, list, records[0].ID)
}

func Test_OnAddWithDash_ShouldUseToday(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	resp := f.reply(t, "/add 1200 jpy college-fees - Books")

	assert.True(t, strings.HasPrefix(resp, "Added Books: ¥1,200 (College Fees, 2024-03-15)"), resp)
}

func Test_OnBadAddInput_ShouldExplain(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	cases := map[string]string{
		"/add 1 MKD food":                    incorrectUsageMessage,
		"/add abc MKD food - x":              incorrectAmountMessage,
		"/add -5 MKD food - x":               incorrectAmountMessage,
		"/add 1e400 MKD food - x":            incorrectAmountMessage,
		"/add 1000000000000 MKD food - x":    incorrectAmountMessage,
		"/add 999999999999.999 MKD food - x": incorrectAmountMessage,
		"/add NaN MKD food - x":              incorrectAmountMessage,
		"/add 5 XYZ food - x":                `Unknown currency "XYZ". See /currencies`,
		"/add 5 MKD rent - x":                `Unknown category "rent". See /categories`,
		"/add 5 MKD food 15.03.2024 x":       incorrectDateMessage,
		"/add 5 MKD food 2024-02-30 leapday": incorrectDateMessage,
	}
	for text, want := range cases {
		assert.Equal(t, want, f.reply(t, text), text)
	}
	assert.Empty(t, f.sessions.Get(chat).Expenses.Records())
}

func Test_OnAddWhileAnotherInFlight_ShouldRefuse(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)
	sess := f.sessions.Get(chat)
	require.True(t, sess.BeginAdd())

	assert.Equal(t, addInProgressMessage, f.reply(t, "/add 1 MKD food - x"))

	sess.EndAdd()
	assert.True(t, strings.HasPrefix(f.reply(t, "/add 1 MKD food - x"), "Added x"))
}

func Test_OnStats_ShouldAggregateInDisplayCurrency(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)
	f.reply(t, "/add 100 MKD food 2024-03-01 Lunch")
	f.reply(t, "/add 2 USD transportation 2024-03-02 Bus")

	resp := f.reply(t, "/stats")

	assert.Contains(t, resp, "Total Expenses: MKD 211.00")
	assert.Contains(t, resp, "Number of Expenses: 2")
	assert.Contains(t, resp, "Highest Expense: MKD 111.00")
	assert.Contains(t, resp, "Latest Expense: Mar 2, 2024")
}

func Test_OnStatsArguments_ShouldFilterAndConvert(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)
	f.reply(t, "/add 61.5 MKD food 2024-03-14 Lunch")
	f.reply(t, "/add 615 MKD shopping 2023-12-01 Shoes")

	assert.Contains(t, f.reply(t, "/stats eur week"), "Total Expenses: €1.00")
	assert.Contains(t, f.reply(t, "/stats year EUR"), "Number of Expenses: 1")
	assert.Contains(t, f.reply(t, "/stats all"), "Number of Expenses: 2")
	assert.Equal(t, incorrectUsageMessage, f.reply(t, "/stats decade"))
}

func Test_OnEmptyStats_ShouldShowZeros(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	resp := f.reply(t, "/stats")

	assert.Contains(t, resp, "Total Expenses: MKD 0.00")
	assert.Contains(t, resp, "Latest Expense: No expenses yet")
}

func Test_OnCurrency_ShouldChangeDisplayCurrency(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "Display currency set to USD (US Dollar).", f.reply(t, "/currency usd"))
	assert.Equal(t, currency.USD, f.sessions.Get(chat).DisplayCurrency())
	assert.Equal(t, `Unknown currency "ABC". See /currencies`, f.reply(t, "/currency abc"))
}

func Test_OnDelete_ShouldRemoveOrReportMissing(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)
	f.reply(t, "/add 10 MKD gifts - Flowers")
	id := f.sessions.Get(chat).Expenses.Records()[0].ID

	assert.Equal(t, notFoundMessage, f.reply(t, "/delete nope"))
	assert.Equal(t, deletedMessage, f.reply(t, "/delete "+id))
	assert.Empty(t, f.sessions.Get(chat).Expenses.Records())
	assert.Equal(t, noExpensesMessage, f.reply(t, "/list"))
}

func Test_OnCatalogCommands_ShouldListEntries(t *testing.T) {
	f := newFixture(t)

	currencies := f.reply(t, "/currencies")
	assert.True(t, strings.HasPrefix(currencies, "AUD  Australian Dollar"))
	assert.Contains(t, currencies, "MKD  Macedonian Denar")
	assert.Contains(t, f.reply(t, "/categories"), "College Fees")
}

func Test_ParseCommand(t *testing.T) {
	cases := []struct {
		text, cmd, arg string
	}{
		{"/start", "/start", ""},
		{"  /add@expense_bot 1 MKD food - x ", "/add", "1 MKD food - x"},
		{"hello there", "", "hello there"},
		{"/list@expense_bot", "/list", ""},
	}
	for _, c := range cases {
		cmd, arg := parseCommand(c.text)
		assert.Equal(t, c.cmd, cmd, c.text)
		assert.Equal(t, c.arg, arg, c.text)
	}
}
