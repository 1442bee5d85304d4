package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// adviceText holds the display block of the last calculation. The text can
// be selected and copied but never changed from the keyboard.
type adviceText struct {
	widget.Entry
}

func newAdviceText(placeholder string) *adviceText {
	a := &adviceText{}
	a.MultiLine = true
	a.Wrapping = fyne.TextWrapWord
	a.PlaceHolder = placeholder
	a.ExtendBaseWidget(a)
	return a
}

// editingKeys would modify the content.
var editingKeys = map[fyne.KeyName]bool{
	fyne.KeyBackspace: true,
	fyne.KeyDelete:    true,
	fyne.KeyReturn:    true,
	fyne.KeyEnter:     true,
	fyne.KeyTab:       true,
}

func (a *adviceText) TypedRune(_ rune) {}

func (a *adviceText) TypedKey(ev *fyne.KeyEvent) {
	if editingKeys[ev.Name] {
		return
	}
	a.Entry.TypedKey(ev)
}

func (a *adviceText) TypedShortcut(s fyne.Shortcut) {
	if keepsText(s) {
		a.Entry.TypedShortcut(s)
	}
}

// keepsText reports whether s leaves the content untouched.
func keepsText(s fyne.Shortcut) bool {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll, *desktop.CustomShortcut:
		return true
	}
	return false
}
