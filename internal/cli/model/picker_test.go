package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rpmview/internal/cli/styles"
	"github.com/bnema/rpmview/internal/domain/avatar"
)

func press(t *testing.T, m PickerModel, keys ...tea.KeyMsg) (PickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(PickerModel)
		require.True(t, ok)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestPickerModel_WalksAllSteps(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), avatar.Config{PartnerDomain: "demo"})

	// language: default -> en -> en-IE
	m, _ = press(t, m, keyDown, keyDown, keyEnter)
	// body type: none -> fullbody
	m, _ = press(t, m, keyDown, keyEnter)
	// gender: none -> male -> female
	m, cmd := press(t, m, keyDown, keyDown, keyEnter)

	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.False(t, m.Cancelled())

	cfg := m.Config()
	assert.Equal(t, avatar.LanguageEnIe, cfg.Language)
	assert.Equal(t, avatar.BodyTypeFullBody, cfg.BodyType)
	assert.Equal(t, avatar.GenderFemale, cfg.Gender)
	assert.Equal(t, "https://demo.readyplayer.me/en-IE/avatar?frameApi&bodyType=fullbody&gender=female", cfg.URL(""))
	assert.Empty(t, m.View())
}

func TestPickerModel_CursorStartsOnCurrentValue(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), avatar.Config{
		PartnerDomain: "demo",
		Language:      avatar.LanguageDe,
		Gender:        avatar.GenderMale,
	})

	m, _ = press(t, m, keyEnter, keyEnter, keyEnter)

	cfg := m.Config()
	assert.Equal(t, avatar.LanguageDe, cfg.Language)
	assert.Equal(t, avatar.BodyTypeNone, cfg.BodyType)
	assert.Equal(t, avatar.GenderMale, cfg.Gender)
}

func TestPickerModel_CursorIsClamped(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), avatar.Config{PartnerDomain: "demo"})

	m, _ = press(t, m, keyEnter, keyUp, keyUp)
	assert.Equal(t, 0, m.cursor)

	for range 10 {
		m, _ = press(t, m, keyDown)
	}
	assert.Equal(t, 3, m.cursor)
}

func TestPickerModel_BackReturnsToPreviousStep(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), avatar.Config{PartnerDomain: "demo"})

	m, _ = press(t, m, keyDown, keyEnter, keyBack)
	assert.Equal(t, stepLanguage, m.step)
	assert.Equal(t, 1, m.cursor, "cursor returns to the chosen language")
}

func TestPickerModel_Cancel(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), avatar.Config{PartnerDomain: "demo"})

	m, cmd := press(t, m, keyDown, keyEsc)
	require.NotNil(t, cmd)
	assert.True(t, m.Cancelled())
	assert.False(t, m.Done())
}

func TestPickerModel_ViewShowsStepAndURL(t *testing.T) {
	m := NewPickerModel(styles.NewTheme(), avatar.Config{PartnerDomain: "demo"})

	view := m.View()
	assert.Contains(t, view, "Language")
	assert.Contains(t, view, "en-IE")
	assert.Contains(t, view, "https://demo.readyplayer.me/avatar?frameApi")
}
