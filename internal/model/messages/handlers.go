package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/session"
)

const (
	dontUnderstandMessage = "I don't understand you :( Try /help"
	helloMessage          = "Hello! I am your expense tracker bot 🤖\nUse /signup or /login to start, /help lists everything I can do."
	loveToTalkMessage     = "I would love to talk about it more! Try /help"
	helpMessage           = `/signup <email> <password> - create an account
/login <email> <password> - sign in
/google - sign in with Google, then /google <code> or /google cancel
/logout - sign out
/me - who am I signed in as
/add <amount> <currency> <category> <yyyy-mm-dd|-> <description> - record an expense
/list - your expenses, newest first
/delete <id> - remove an expense
/stats [currency] [week|month|year] - totals
/currency <code> - set the display currency
/currencies - supported currencies
/categories - expense categories`

	signInFirstMessage    = "Please /login or /signup first."
	alreadySignedIn       = "You are already signed in as %s. Use /logout first."
	signedInMessage       = "Welcome, %s!"
	signedOutMessage      = "You are signed out."
	notSignedInMessage    = "You are not signed in."
	googleStartMessage    = "Open this link, approve access and send me the code with /google <code> (or /google cancel):\n%s"
	canceledMessage       = "Sign-in canceled."
	authFailedMessage     = "Cannot reach the sign-in service atm. Try later"
	noExpensesMessage     = "You have no expenses yet"
	addInProgressMessage  = "Your previous expense is still being saved, please wait."
	addedMessage          = "Added %s: %s (%s, %s)\nid: %s"
	deletedMessage        = "Deleted."
	notFoundMessage       = "No expense with that id. See /list"
	deleteFailedMessage   = "Couldn't delete the expense. Your list was reloaded from the server."
	currencySetMessage    = "Display currency set to %s (%s)."
	sessionChangedMessage = "Your session changed while saving. Please check /list"

	incorrectUsageMessage    = "That is an incorrect command usage. See /help"
	incorrectAmountMessage   = "Your expense amount is incorrect"
	incorrectDateMessage     = "The date is incorrect. Should be yyyy-mm-dd or -"
	unknownCurrencyMessage   = "Unknown currency %q. See /currencies"
	unknownCategoryMessage   = "Unknown category %q. See /categories"
	cannotGetExpensesMessage = "Can't get your expenses atm. Try later"
	cannotSaveExpenseMessage = "Can't save your expense atm. Try later"

	listLimit = 30
)

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	signUpCommand     = "/signup"
	loginCommand      = "/login"
	googleCommand     = "/google"
	logoutCommand     = "/logout"
	meCommand         = "/me"
	addCommand        = "/add"
	listCommand       = "/list"
	deleteCommand     = "/delete"
	statsCommand      = "/stats"
	currencyCommand   = "/currency"
	currenciesCommand = "/currencies"
	categoriesCommand = "/categories"
)

type authService interface {
	SignIn(ctx context.Context, chatID int64, email, password string) (user.Identity, error)
	SignUp(ctx context.Context, chatID int64, email, password string) (user.Identity, error)
	FederatedURL(chatID int64) string
	SignInWithFederated(ctx context.Context, chatID int64, code string) (user.Identity, error)
	SignOut(ctx context.Context, chatID int64) error
	Current(chatID int64) (user.Identity, bool)
	Restore(ctx context.Context, chatID int64) error
}

type sessionStore interface {
	Get(key int64) *session.Context
}

type handler func(ctx context.Context, arg string, chatID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	auth        authService
	sessions    sessionStore
	now         func() time.Time
}

func newHandler(auth authService, sessions sessionStore) *HandlerService {
	res := &HandlerService{
		auth:     auth,
		sessions: sessions,
		now:      time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[signUpCommand] = s.handleSignUp
	m[loginCommand] = s.handleLogin
	m[googleCommand] = s.handleGoogle
	m[logoutCommand] = s.handleLogout
	m[meCommand] = s.handleMe
	m[addCommand] = s.signedIn(s.handleAdd)
	m[listCommand] = s.signedIn(s.handleList)
	m[deleteCommand] = s.signedIn(s.handleDelete)
	m[statsCommand] = s.signedIn(s.handleStats)
	m[currencyCommand] = s.handleCurrency
	m[currenciesCommand] = s.handleCurrencies
	m[categoriesCommand] = s.handleCategories

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, chatID int64) (string, error) {
	if err := s.auth.Restore(ctx, chatID); err != nil {
		logger.Warn("cannot restore identity", zap.Int64("chatID", chatID), zap.Error(err))
	}

	cmd, arg := parseCommand(text)
	cmd = strings.ToLower(cmd)
	handler, ok := s.handlersMap[cmd]
	countCommand(cmd, ok)
	if ok {
		return handler(ctx, arg, chatID)
	}
	return dontUnderstandMessage, nil
}

func (s *HandlerService) signedIn(next handler) handler {
	return func(ctx context.Context, arg string, chatID int64) (string, error) {
		if _, ok := s.sessions.Get(chatID).Gate.Identity(); !ok {
			return signInFirstMessage, nil
		}
		return next(ctx, arg, chatID)
	}
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) handleSignUp(ctx context.Context, arg string, chatID int64) (string, error) {
	return s.passwordAuth(ctx, arg, chatID, s.auth.SignUp)
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string, chatID int64) (string, error) {
	return s.passwordAuth(ctx, arg, chatID, s.auth.SignIn)
}

type passwordFlow func(ctx context.Context, chatID int64, email, password string) (user.Identity, error)

func (s *HandlerService) passwordAuth(ctx context.Context, arg string, chatID int64, flow passwordFlow) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return incorrectUsageMessage, nil
	}
	if ident, ok := s.auth.Current(chatID); ok {
		return fmt.Sprintf(alreadySignedIn, ident.Label()), nil
	}
	ident, err := flow(ctx, chatID, args[0], args[1])
	return authReply(ident, err)
}

func (s *HandlerService) handleGoogle(ctx context.Context, arg string, chatID int64) (string, error) {
	if ident, ok := s.auth.Current(chatID); ok {
		return fmt.Sprintf(alreadySignedIn, ident.Label()), nil
	}
	if strings.TrimSpace(arg) == "" {
		return fmt.Sprintf(googleStartMessage, s.auth.FederatedURL(chatID)), nil
	}
	ident, err := s.auth.SignInWithFederated(ctx, chatID, arg)
	if errors.Is(err, auth.ErrCanceled) {
		return canceledMessage, nil
	}
	return authReply(ident, err)
}

// authReply turns a sign-in outcome into a reply. A sign-in that worked
// but whose expense list failed to load still greets the user.
func authReply(ident user.Identity, err error) (string, error) {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		return authErr.Message, nil
	}
	if ident.Present() {
		welcome := fmt.Sprintf(signedInMessage, ident.Label())
		if err != nil && !errors.Is(err, expenses.ErrSessionChanged) {
			logger.Warn("signed in but cannot load expenses", zap.String("owner", ident.OwnerID), zap.Error(err))
			return welcome + "\n" + cannotGetExpensesMessage, nil
		}
		return welcome, nil
	}
	if err != nil {
		return authFailedMessage, errors.Wrap(err, "sign in")
	}
	return authFailedMessage, nil
}

func (s *HandlerService) handleLogout(ctx context.Context, _ string, chatID int64) (string, error) {
	if _, ok := s.auth.Current(chatID); !ok {
		return notSignedInMessage, nil
	}
	if err := s.auth.SignOut(ctx, chatID); err != nil {
		return signedOutMessage, errors.Wrap(err, "sign out")
	}
	return signedOutMessage, nil
}

func (s *HandlerService) handleMe(_ context.Context, _ string, chatID int64) (string, error) {
	ident, ok := s.auth.Current(chatID)
	if !ok {
		return notSignedInMessage, nil
	}
	return formatProfile(ident), nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, chatID int64) (string, error) {
	rec, reply := parseExpense(arg, s.now())
	if reply != "" {
		return reply, nil
	}

	sess := s.sessions.Get(chatID)
	if !sess.BeginAdd() {
		return addInProgressMessage, nil
	}
	defer sess.EndAdd()

	stored, err := sess.Expenses.AddOptimistic(ctx, rec)
	if errors.Is(err, expenses.ErrSessionChanged) {
		return sessionChangedMessage, nil
	}
	if err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle add")
	}
	return fmt.Sprintf(addedMessage,
		stored.Description,
		currency.Format(stored.Amount, stored.Currency),
		stored.Category,
		stored.Date,
		stored.ID,
	), nil
}

func (s *HandlerService) handleList(_ context.Context, _ string, chatID int64) (string, error) {
	records := s.sessions.Get(chatID).Expenses.Records()
	if len(records) == 0 {
		return noExpensesMessage, nil
	}
	return formatList(records, listLimit), nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, chatID int64) (string, error) {
	id := strings.TrimSpace(arg)
	if id == "" || strings.ContainsAny(id, " \t\n") {
		return incorrectUsageMessage, nil
	}

	err := s.sessions.Get(chatID).Expenses.DeleteOptimistic(ctx, id)
	switch {
	case err == nil:
		return deletedMessage, nil
	case errors.Is(err, expenses.ErrNotFound):
		return notFoundMessage, nil
	default:
		return deleteFailedMessage, errors.Wrap(err, "handle delete")
	}
}

func (s *HandlerService) handleStats(_ context.Context, arg string, chatID int64) (string, error) {
	sess := s.sessions.Get(chatID)
	display, period, reply := parseStatsArgs(arg, sess.DisplayCurrency())
	if reply != "" {
		return reply, nil
	}

	records, err := reports.FilterPeriod(sess.Expenses.Records(), period, s.now())
	if err != nil {
		return incorrectUsageMessage, nil
	}
	return reports.Render(reports.Summarize(records, display)), nil
}

func (s *HandlerService) handleCurrency(_ context.Context, arg string, chatID int64) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(arg))
	if code == "" {
		return incorrectUsageMessage, nil
	}
	if !currency.Valid(code) {
		return fmt.Sprintf(unknownCurrencyMessage, code), nil
	}
	s.sessions.Get(chatID).SetDisplayCurrency(code)
	return fmt.Sprintf(currencySetMessage, code, currency.Name(code)), nil
}

func (s *HandlerService) handleCurrencies(_ context.Context, _ string, _ int64) (string, error) {
	return formatCurrencies(), nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string, _ int64) (string, error) {
	return strings.Join(expense.Categories, "\n"), nil
}
