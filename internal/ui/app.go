// Package ui is the bubbletea front end: a login screen, the paginated
// transactions table, the dashboard charts and the modals on top of
// them. All business rules live in the forms, pipeline and services
// packages; this layer only renders state and routes key events.
package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"finboard/internal/config"
	applog "finboard/internal/log"
	"finboard/internal/services"
	"finboard/internal/session"
)

type screen int

const (
	screenLogin screen = iota
	screenTransactions
	screenDashboard
)

// App is the root model. Modals stack above the current screen: an
// open confirm dialog eats all keys, then an open modal, then the
// screen itself.
type App struct {
	cfg     *config.Config
	logger  *applog.Logger
	session *session.Manager
	service *services.TransactionService

	width  int
	height int
	screen screen
	status string

	login        loginModel
	transactions transactionsModel
	dashboard    dashboardModel

	txModal   *txModal
	userModal *userModal
	confirm   *confirmDialog
}

func NewApp(cfg *config.Config, logger *applog.Logger, sess *session.Manager, svc *services.TransactionService) *App {
	return &App{
		cfg:          cfg,
		logger:       logger.WithComponent(applog.ComponentUI),
		session:      sess,
		service:      svc,
		login:        newLoginModel(),
		transactions: newTransactionsModel(cfg.PageSize),
		dashboard:    newDashboardModel(),
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		a.status = ""
		switch {
		case a.confirm != nil:
			return a.updateConfirm(msg)
		case a.txModal != nil:
			return a.updateTxModal(msg)
		case a.userModal != nil:
			return a.updateUserModal(msg)
		}
		switch a.screen {
		case screenLogin:
			return a.updateLogin(msg)
		case screenTransactions:
			return a.updateTransactions(msg)
		default:
			return a.updateDashboard(msg)
		}
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch {
	case a.confirm != nil:
		body = a.confirm.view()
	case a.txModal != nil:
		body = a.txModal.view()
	case a.userModal != nil:
		body = a.userModal.view()
	case a.screen == screenLogin:
		body = a.viewLogin()
	case a.screen == screenTransactions:
		body = a.viewTransactions()
	default:
		body = a.viewDashboard()
	}

	var b strings.Builder
	if a.screen != screenLogin {
		b.WriteString(a.headerView())
		b.WriteString("\n\n")
	}
	b.WriteString(body)
	if a.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(a.status))
	}
	b.WriteString("\n")
	return b.String()
}

func (a *App) headerView() string {
	name := ""
	if u, ok := a.session.Current(); ok {
		name = u.Name
	}
	nav := "[t] transactions  [g] dashboard  [u] settings  [o] log out  [q] quit"
	return headerStyle.Render("finboard") + "  " + labelStyle.Render(nav) + "  " + name
}

// handleGlobalKey routes the navigation keys shared by the two
// logged-in screens. Callers skip it while a text filter is being
// typed.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "t":
		a.screen = screenTransactions
		a.reloadTransactions()
		a.logger.Debug("screen changed", "screen", "transactions")
		return true, nil
	case "g":
		a.screen = screenDashboard
		a.reloadDashboard()
		a.logger.Debug("screen changed", "screen", "dashboard")
		return true, nil
	case "u":
		if u, ok := a.session.Current(); ok {
			a.userModal = newUserModal(u)
		}
		return true, nil
	case "o":
		a.confirm = &confirmDialog{
			title: "Log out?",
			action: func(a *App) {
				a.session.Logout()
				a.screen = screenLogin
				a.login = newLoginModel()
				a.transactions = newTransactionsModel(a.cfg.PageSize)
				a.dashboard = newDashboardModel()
			},
		}
		return true, nil
	case "q":
		return true, tea.Quit
	}
	return false, nil
}

func (a *App) ctx() context.Context { return context.Background() }
