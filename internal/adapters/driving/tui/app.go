package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/account"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/engine"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/notifications"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/plans"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/reports"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/risk"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/views/workspace"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusBar *status.Bar

	menuView          *menu.View
	engineView        *engine.View
	notificationsView *notifications.View
	riskView          *risk.View
	reportsView       *reports.View
	workspaceView     *workspace.View
	plansView         *plans.View
	accountView       *account.View
	settingsView      *settings.View

	// updates receives pipeline snapshots until unsubscribe is called.
	updates     <-chan domain.RunState
	unsubscribe func()

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The app subscribes to pipeline updates; call Close to release the subscription.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	updates, unsubscribe := ports.Pipeline.Subscribe()

	a := &App{
		ports:             ports,
		ctx:               context.Background(),
		styles:            s,
		keymap:            km,
		statusBar:         status.NewBar(s, km),
		menuView:          menu.NewView(s),
		engineView:        engine.NewView(s, ports.Pipeline, ports.Catalog),
		notificationsView: notifications.NewView(s, ports.Notifications),
		riskView:          risk.NewView(s, ports.Catalog),
		reportsView:       reports.NewView(s, ports.Reports),
		workspaceView:     workspace.NewView(s, ports.Workspace),
		plansView:         plans.NewView(s, ports.Billing),
		accountView:       account.NewView(s, ports.Session),
		settingsView:      settings.NewView(s, ports.Settings),
		updates:           updates,
		unsubscribe:       unsubscribe,
		currentView:       messages.ViewMenu,
	}
	a.refreshHeader()
	a.statusBar.SetBindings(km.ShortHelp())
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Close releases the pipeline subscription. It is safe to call more than once.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("财界哨兵 - Sentinel"),
		a.engineView.Init(),
		waitForPipeline(a.updates),
	)
}

// waitForPipeline blocks until the next pipeline snapshot.
// It yields nil once the subscription is closed.
func waitForPipeline(updates <-chan domain.RunState) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return nil
		}
		return messages.PipelineUpdated{State: state}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.PipelineUpdated:
		a.engineView, cmd = a.engineView.Update(msg)
		a.showPipelineStatus(msg.State)
		return a, tea.Batch(cmd, waitForPipeline(a.updates))

	case messages.NotificationsChanged:
		a.notificationsView, cmd = a.notificationsView.Update(msg)
		a.refreshHeader()
		if msg.Err != nil {
			a.setError(msg.Err)
		}
		return a, cmd

	case messages.NotificationOpened:
		a.notificationsView, cmd = a.notificationsView.Update(msg)
		a.refreshHeader()
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, cmd
		}
		return a, tea.Batch(cmd, a.followRoute(msg.Route))

	case messages.SessionChanged:
		a.accountView, cmd = a.accountView.Update(msg)
		a.refreshHeader()
		switch {
		case msg.Err != nil:
			a.setError(msg.Err)
		case msg.Session != nil:
			a.statusBar.SetState(status.StateInfo, "已登录 "+msg.Session.Email)
		default:
			a.statusBar.SetState(status.StateInfo, "已退出登录")
		}
		return a, cmd

	case messages.CheckoutCompleted:
		a.plansView, cmd = a.plansView.Update(msg)
		switch {
		case errors.Is(msg.Err, domain.ErrCheckoutCancelled):
			a.statusBar.SetState(status.StateInfo, "支付已取消")
		case msg.Err != nil:
			a.setError(msg.Err)
		default:
			a.statusBar.SetState(status.StateInfo, "支付成功")
		}
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		if a.currentView == messages.ViewEngine {
			a.engineView, cmd = a.engineView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	capturing := a.currentView == messages.ViewAccount && a.accountView.Capturing()

	switch {
	case k == "ctrl+c":
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Back) && a.currentView != messages.ViewMenu:
		if a.currentView == messages.ViewPlans && a.plansView.Cancel() {
			a.statusBar.SetState(status.StateInfo, "支付已取消")
		}
		return a, a.switchTo(messages.ViewMenu)

	case k == "q" && !capturing:
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Help) && !capturing && a.currentView != messages.ViewHelp:
		return a, a.switchTo(messages.ViewHelp)
	}

	return a, a.forward(msg)
}

// forward hands msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewEngine:
		a.engineView, cmd = a.engineView.Update(msg)
	case messages.ViewNotifications:
		a.notificationsView, cmd = a.notificationsView.Update(msg)
	case messages.ViewRisk:
		a.riskView, cmd = a.riskView.Update(msg)
	case messages.ViewReports:
		a.reportsView, cmd = a.reportsView.Update(msg)
	case messages.ViewWorkspace:
		a.workspaceView, cmd = a.workspaceView.Update(msg)
	case messages.ViewPlans:
		a.plansView, cmd = a.plansView.Update(msg)
	case messages.ViewAccount:
		a.accountView, cmd = a.accountView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't handle messages
	}
	return cmd
}

// switchTo activates a view and runs its initialisation.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.statusBar.SetBindings(a.keymap.ShortHelp())

	switch view {
	case messages.ViewMenu:
		a.refreshHeader()
	case messages.ViewEngine:
		a.statusBar.SetBindings(a.keymap.EngineHelp())
		return a.engineView.Init()
	case messages.ViewNotifications:
		a.statusBar.SetBindings(a.keymap.NotificationsHelp())
		return a.notificationsView.Init()
	case messages.ViewRisk:
		return a.riskView.Init()
	case messages.ViewReports:
		return a.reportsView.Init()
	case messages.ViewWorkspace:
		return a.workspaceView.Init()
	case messages.ViewPlans:
		return a.plansView.Init()
	case messages.ViewAccount:
		return a.accountView.Init()
	case messages.ViewSettings:
		return a.settingsView.Init()
	case messages.ViewHelp:
		// Static text
	}
	return nil
}

// followRoute shows the view a notification link points at.
func (a *App) followRoute(route string) tea.Cmd {
	switch {
	case strings.HasSuffix(route, "/dashboard"):
		return a.switchTo(messages.ViewRisk)
	case strings.HasSuffix(route, "/reports"):
		return a.switchTo(messages.ViewReports)
	case strings.HasSuffix(route, "/workspace"):
		return a.switchTo(messages.ViewWorkspace)
	case strings.HasSuffix(route, "/ai-engine"):
		return a.switchTo(messages.ViewEngine)
	default:
		a.statusBar.SetState(status.StateInfo, "已打开 "+route)
		return nil
	}
}

func (a *App) showPipelineStatus(state domain.RunState) {
	switch {
	case state.Scanning:
		a.statusBar.SetState(status.StateRunning, "扫描中: "+state.UploadLabel)
	case state.Running:
		stages := a.ports.Pipeline.Stages()
		if state.CurrentStage >= 0 && state.CurrentStage < len(stages) {
			a.statusBar.SetState(status.StateRunning, stages[state.CurrentStage].Label+"...")
		} else {
			a.statusBar.SetState(status.StateRunning, "")
		}
	case state.IsTerminal():
		a.statusBar.SetState(status.StateInfo, "处理完成")
	default:
		if a.statusBar.State() == status.StateRunning {
			a.statusBar.Clear()
		}
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError, err.Error())
}

// refreshHeader syncs the unread badge and signed-in name.
func (a *App) refreshHeader() {
	unread := a.ports.Notifications.UnreadCount()
	a.menuView.SetUnread(unread)
	a.statusBar.SetUnread(unread)

	name := ""
	if a.ports.Session != nil {
		if s := a.ports.Session.Current(); s != nil {
			name = s.Name
		}
	}
	a.menuView.SetUser(name)
	a.statusBar.SetUser(name)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewEngine:
		body = a.engineView.View()
	case messages.ViewNotifications:
		body = a.notificationsView.View()
	case messages.ViewRisk:
		body = a.riskView.View()
	case messages.ViewReports:
		body = a.reportsView.View()
	case messages.ViewWorkspace:
		body = a.workspaceView.View()
	case messages.ViewPlans:
		body = a.plansView.View()
	case messages.ViewAccount:
		body = a.accountView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}

	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ?           This help
  q, ctrl+c   Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option

AI财务引擎:
  ←/→         Choose sample invoice
  r           Upload and run
  x           Reset

通知中心:
  ←/→         Switch tab
  enter       Open
  m / a       Mark read / mark all read

风险预警:
  ←/→         Filter by level
  enter       Show explanation

财税报告:
  ←/→         Switch section
  f           Filter suggestions by priority

工作台:
  ←/→         Filter by status
  enter       Show review panel

套餐订阅:
  y           Monthly / yearly
  p           Payment method
  enter       Pay (esc cancels)

账户:
  tab         Next field
  ctrl+t      Login / register
  ctrl+w      微信登录
  o           Logout

设置:
  +/-         Adjust timing
  s           Storage backend
  d           Restore defaults

[esc] back to menu`
}

// Run starts the TUI application and releases the pipeline subscription on exit.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.menuView.SetDimensions(width, height)
	a.engineView.SetDimensions(width, height)
	a.notificationsView.SetDimensions(width, height)
	a.riskView.SetDimensions(width, height)
	a.reportsView.SetDimensions(width, height)
	a.workspaceView.SetDimensions(width, height)
	a.plansView.SetDimensions(width, height)
	a.accountView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
