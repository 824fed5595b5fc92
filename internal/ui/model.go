package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/toolbox/internal/catalog"
	"github.com/atomicstack/toolbox/internal/prefs"
	"github.com/atomicstack/toolbox/internal/progress"
	"github.com/atomicstack/toolbox/internal/runner"
	"github.com/atomicstack/toolbox/internal/sysinfo"
	"github.com/atomicstack/toolbox/internal/theme"
	"github.com/atomicstack/toolbox/internal/ui/command"
	uistate "github.com/atomicstack/toolbox/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	levelCategories = "categories"
	levelPrograms   = "programs"
	levelSearch     = "search"
)

type msgHandler func(tea.Msg) tea.Cmd

// ScriptRunner validates scripts and prepares them for execution.
type ScriptRunner interface {
	Check(path string) error
	Command(path string) runner.Execution
}

// PreferenceSaver persists the active theme.
type PreferenceSaver interface {
	Save(prefs.Preferences) error
}

// UpdateChecker reports a newer release version, or "" when there is none.
type UpdateChecker interface {
	Latest(ctx context.Context) (string, error)
}

// Options wires the model to its collaborators. Only Catalog and Runner are
// required.
type Options struct {
	Catalog  *catalog.Catalog
	Runner   ScriptRunner
	Prefs    PreferenceSaver
	Updates  UpdateChecker
	System   sysinfo.Summary
	Theme    string
	Version  string
	Width    int
	Height   int
	Verbose  bool
	Progress *progress.Indicator
}

// Model implements the Bubble Tea model for the launcher.
type Model struct {
	screen     Screen
	catalog    *catalog.Catalog
	categories *level
	programs   *level
	search     *level
	matches    map[string]catalog.Match

	runner    ScriptRunner
	prefs     PreferenceSaver
	updates   UpdateChecker
	indicator *progress.Indicator
	bus       *command.Bus

	system     sysinfo.Summary
	version    string
	newVersion string
	quote      string
	themeID    string
	styles     *theme.Styles

	pendingQuit bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	verbose     bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	keys              keyMap
	help              help.Model
	bar               progressbar.Model
	filterCursor      cursor.Model
	filterFocused     bool
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI on the Categories screen.
func NewModel(opts Options) *Model {
	indicator := opts.Progress
	if indicator == nil {
		indicator = progress.New(progress.DefaultSteps, progress.DefaultInterval)
	}
	m := &Model{
		screen:    ScreenCategories,
		catalog:   opts.Catalog,
		runner:    opts.Runner,
		prefs:     opts.Prefs,
		updates:   opts.Updates,
		indicator: indicator,
		bus:       command.New(),
		system:    opts.System,
		version:   opts.Version,
		quote:     randomQuote(),
		verbose:   opts.Verbose,
		keys:      defaultKeyMap(),
		help:      help.New(),
		bar:       progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithoutPercentage()),
	}
	m.help.ShortSeparator = " | "
	m.applyTheme(opts.Theme)
	m.categories = uistate.NewLevel(levelCategories, "Categories", categoryItems(m.catalog))
	m.programs = uistate.NewLevel(levelPrograms, "Programs", programItems(m.catalog, 0))
	m.search = uistate.NewLevel(levelSearch, "Programs", nil)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.SetChar(" ")
	m.filterCursor = c
	m.styleFilterCursor()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	m.filterFocused = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.startUpdateCheck(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(scriptFinishedMsg{}):  m.handleScriptFinishedMsg,
		reflect.TypeOf(updateResultMsg{}):    m.handleUpdateResultMsg,
		reflect.TypeOf(preferenceSavedMsg{}): m.handlePreferenceSavedMsg,
		reflect.TypeOf(loadingTickMsg{}):     m.handleLoadingTickMsg,
		reflect.TypeOf(loadingDoneMsg{}):     m.handleLoadingDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		if m.filterFocused {
			m.filterCursor.Blink = false
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Screen reports the active screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Theme reports the active theme id.
func (m *Model) Theme() string {
	return m.themeID
}

func (m *Model) applyTheme(id string) {
	scheme := theme.Resolve(id)
	m.themeID = scheme.ID
	m.styles = scheme.Styles()
	m.styleFilterCursor()
}

func (m *Model) loading() bool {
	return m.indicator != nil && m.indicator.Loading()
}

func categoryItems(cat *catalog.Catalog) []uistate.Item {
	if cat == nil {
		return nil
	}
	items := make([]uistate.Item, 0, len(cat.Categories))
	for i, c := range cat.Categories {
		items = append(items, uistate.Item{ID: itemID(i), Label: c.Name})
	}
	return items
}

func programItems(cat *catalog.Catalog, ci int) []uistate.Item {
	if cat == nil {
		return nil
	}
	c, ok := cat.Category(ci)
	if !ok {
		return nil
	}
	items := make([]uistate.Item, 0, len(c.Programs))
	for i, p := range c.Programs {
		items = append(items, uistate.Item{ID: itemID(i), Label: p.Name, Favorite: p.Favorite})
	}
	return items
}
