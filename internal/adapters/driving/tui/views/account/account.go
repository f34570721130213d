// Package account provides the login, registration and logout view for the TUI.
package account

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// Mode selects the form shown while signed out.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// View is the account view.
type View struct {
	styles  *styles.Styles
	session driving.SessionService

	mode     Mode
	login    []*input.Field
	register []*input.Field
	focus    int
	current  *domain.Session
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new account view.
func NewView(s *styles.Styles, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		session: session,
		login: []*input.Field{
			input.NewField(s, "邮箱", domain.DefaultLoginEmail),
			input.NewPasswordField(s, "密码"),
		},
		register: []*input.Field{
			input.NewField(s, "姓名", domain.DefaultRegisterName),
			input.NewField(s, "邮箱", domain.DefaultRegisterEmail),
			input.NewPasswordField(s, "密码"),
		},
		width:  80,
		height: 24,
	}
}

// Init syncs with the session service and focuses the first field.
func (v *View) Init() tea.Cmd {
	v.err = nil
	if v.session != nil {
		v.current = v.session.Current()
	}
	if v.current != nil {
		v.blurAll()
		return nil
	}
	return v.setFocus(0)
}

// Update handles messages for the account view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SessionChanged:
		v.err = msg.Err
		if msg.Err != nil {
			return v, nil
		}
		v.current = msg.Session
		v.resetForms()
		if v.current == nil {
			return v, v.setFocus(0)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.session == nil {
		return v, nil
	}

	if v.current != nil {
		if msg.String() == "o" {
			return v, v.logout()
		}
		return v, nil
	}

	switch msg.String() {
	case "tab", "down":
		return v, v.setFocus((v.focus + 1) % len(v.fields()))
	case "shift+tab", "up":
		n := len(v.fields())
		return v, v.setFocus((v.focus + n - 1) % n)
	case "ctrl+t":
		v.blurAll()
		if v.mode == ModeLogin {
			v.mode = ModeRegister
		} else {
			v.mode = ModeLogin
		}
		v.err = nil
		return v, v.setFocus(0)
	case "ctrl+w":
		return v, v.signIn(func() (*domain.Session, error) {
			return v.session.Login(domain.WeChatLoginEmail)
		})
	case "enter":
		return v, v.submit()
	}

	field, cmd := v.fields()[v.focus].Update(msg)
	v.fields()[v.focus] = field
	return v, cmd
}

func (v *View) fields() []*input.Field {
	if v.mode == ModeRegister {
		return v.register
	}
	return v.login
}

func (v *View) setFocus(i int) tea.Cmd {
	v.blurAll()
	v.focus = i
	return v.fields()[i].Focus()
}

func (v *View) blurAll() {
	for _, f := range v.login {
		f.Blur()
	}
	for _, f := range v.register {
		f.Blur()
	}
}

func (v *View) resetForms() {
	for _, f := range v.login {
		f.Reset()
	}
	for _, f := range v.register {
		f.Reset()
	}
	v.blurAll()
	v.focus = 0
}

// submit signs in with the form values. Blank fields fall back to the
// placeholder identities and the password is never checked.
func (v *View) submit() tea.Cmd {
	session := v.session
	if v.mode == ModeRegister {
		name, email := v.register[0].Value(), v.register[1].Value()
		return v.signIn(func() (*domain.Session, error) {
			return session.Register(name, email)
		})
	}
	email := v.login[0].Value()
	return v.signIn(func() (*domain.Session, error) {
		return session.Login(email)
	})
}

func (v *View) signIn(fn func() (*domain.Session, error)) tea.Cmd {
	return func() tea.Msg {
		s, err := fn()
		return messages.SessionChanged{Session: s, Err: err}
	}
}

func (v *View) logout() tea.Cmd {
	session := v.session
	return func() tea.Msg {
		if err := session.Logout(); err != nil {
			return messages.SessionChanged{Session: session.Current(), Err: err}
		}
		return messages.SessionChanged{}
	}
}

// View renders the account view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("账户"))
	b.WriteString("\n\n")

	if v.session == nil {
		b.WriteString(v.styles.Error.Render("Accounts not available"))
		return b.String()
	}

	if v.current != nil {
		fmt.Fprintf(&b, "已登录: %s\n", v.styles.Selected.Render(v.current.Name))
		fmt.Fprintf(&b, "%s\n", v.styles.Muted.Render(v.current.Email))
		v.writeErr(&b)
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[o] logout  [esc] back"))
		return b.String()
	}

	heading := "登录"
	if v.mode == ModeRegister {
		heading = "注册"
	}
	b.WriteString(v.styles.Subtitle.Render(heading))
	b.WriteString("\n\n")
	for _, f := range v.fields() {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	v.writeErr(&b)

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next  [enter] submit  [ctrl+t] login/register  [ctrl+w] 微信登录  [esc] back"))
	return b.String()
}

func (v *View) writeErr(b *strings.Builder) {
	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Mode returns the form shown while signed out.
func (v *View) Mode() Mode {
	return v.mode
}

// Session returns the signed-in session or nil.
func (v *View) Session() *domain.Session {
	return v.current
}

// Capturing reports whether key presses are typed into a form field.
func (v *View) Capturing() bool {
	return v.session != nil && v.current == nil
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
