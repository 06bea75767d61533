// Package model holds the bubbletea models of the interactive commands.
package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/rpmview/internal/cli/styles"
	"github.com/bnema/rpmview/internal/domain/avatar"
)

type pickerStep int

const (
	stepLanguage pickerStep = iota
	stepBodyType
	stepGender
	stepDone
)

type option struct {
	label string
	apply func(*avatar.Config)
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultPickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("backspace", "h"), key.WithHelp("⌫", "back")),
	Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// PickerModel walks through language, body type and gender.
type PickerModel struct {
	theme  *styles.Theme
	keys   pickerKeyMap
	help   help.Model
	cfg    avatar.Config
	step   pickerStep
	cursor int
	steps  map[pickerStep][]option

	cancelled bool
}

// NewPickerModel starts from cfg; the cursor of each step sits on its current value.
func NewPickerModel(theme *styles.Theme, cfg avatar.Config) PickerModel {
	m := PickerModel{
		theme: theme,
		keys:  defaultPickerKeys,
		help:  help.New(),
		cfg:   cfg,
		steps: map[pickerStep][]option{
			stepLanguage: languageOptions(),
			stepBodyType: bodyTypeOptions(),
			stepGender:   genderOptions(),
		},
	}
	m.cursor = m.currentIndex()
	return m
}

func languageOptions() []option {
	opts := []option{{label: "default", apply: func(c *avatar.Config) { c.Language = avatar.LanguageDefault }}}
	for _, l := range avatar.Languages() {
		opts = append(opts, option{label: l.Code(), apply: func(c *avatar.Config) { c.Language = l }})
	}
	return opts
}

func bodyTypeOptions() []option {
	var opts []option
	for _, b := range []avatar.BodyType{avatar.BodyTypeNone, avatar.BodyTypeFullBody, avatar.BodyTypeHalfBody, avatar.BodyTypeSelect} {
		opts = append(opts, option{label: b.String(), apply: func(c *avatar.Config) { c.BodyType = b }})
	}
	return opts
}

func genderOptions() []option {
	var opts []option
	for _, g := range []avatar.Gender{avatar.GenderNone, avatar.GenderMale, avatar.GenderFemale} {
		opts = append(opts, option{label: g.String(), apply: func(c *avatar.Config) { c.Gender = g }})
	}
	return opts
}

func (m PickerModel) currentLabel() string {
	switch m.step {
	case stepLanguage:
		return m.cfg.Language.String()
	case stepBodyType:
		return m.cfg.BodyType.String()
	case stepGender:
		return m.cfg.Gender.String()
	}
	return ""
}

func (m PickerModel) currentIndex() int {
	label := m.currentLabel()
	for i, o := range m.steps[m.step] {
		if o.label == label {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	opts := m.steps[m.step]
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Back):
		if m.step > stepLanguage {
			m.step--
			m.cursor = m.currentIndex()
		}
	case key.Matches(keyMsg, m.keys.Select):
		opts[m.cursor].apply(&m.cfg)
		m.step++
		if m.step == stepDone {
			return m, tea.Quit
		}
		m.cursor = m.currentIndex()
	}
	return m, nil
}

func (m PickerModel) stepTitle() string {
	switch m.step {
	case stepLanguage:
		return "Language"
	case stepBodyType:
		return "Body type"
	case stepGender:
		return "Gender"
	}
	return ""
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.step == stepDone || m.cancelled {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n",
		m.theme.Title.Render(m.stepTitle()),
		m.theme.Subtle.Render(fmt.Sprintf("(%d/3)", int(m.step)+1)))

	for i, o := range m.steps[m.step] {
		if i == m.cursor {
			b.WriteString(m.theme.ListItemSelected.Render("› " + o.label))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + o.label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtle.Render(m.cfg.URL("")))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Done reports whether every step was answered.
func (m PickerModel) Done() bool {
	return m.step == stepDone && !m.cancelled
}

// Cancelled reports whether the user quit early.
func (m PickerModel) Cancelled() bool {
	return m.cancelled
}

// Config returns the configuration built so far.
func (m PickerModel) Config() avatar.Config {
	return m.cfg
}
