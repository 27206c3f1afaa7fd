package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-modal/internal/logging/events"
	"github.com/atomicstack/popup-modal/internal/theme"
	"github.com/atomicstack/popup-modal/internal/ui/command"
	uistate "github.com/atomicstack/popup-modal/internal/ui/state"
	"github.com/atomicstack/popup-modal/pkg/focus"
	"github.com/atomicstack/popup-modal/pkg/modal"
	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

type page = uistate.Page

const (
	pageID      = "page"
	pageTitleID = "page__title"
	pageTitle   = "Dialogs"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type actionResultMsg struct {
	info string
	err  error
}

// Options configures the demo host.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// Dialog is opened as soon as the program starts.
	Dialog string
	Locale string
	Trace  bool

	Lock       *scrolllock.Coordinator
	Focus      *focus.Manager
	Translator modal.Translator
	Observer   modal.Observer
	Allocator  modal.Allocator
}

// Model implements the Bubble Tea model for the dialog demo.
type Model struct {
	page              *page
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	traceEnabled      bool
	locale            string
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus

	lock        *scrolllock.Coordinator
	focus       *focus.Manager
	locked      bool
	unsubscribe func()
	dialogs     map[string]*dialog
	order       []string
	active      string
	startDialog string
	mountCmds   []tea.Cmd
}

// NewModel mounts every demo dialog, closed, and builds the launcher page.
func NewModel(opts Options) *Model {
	lock := opts.Lock
	if lock == nil {
		lock = scrolllock.New()
	}
	mgr := opts.Focus
	if mgr == nil {
		mgr = focus.NewManager()
	}
	m := &Model{
		bus:          command.New(),
		lock:         lock,
		focus:        mgr,
		showFooter:   opts.ShowFooter,
		traceEnabled: opts.Trace,
		locale:       opts.Locale,
		dialogs:      make(map[string]*dialog),
		startDialog:  opts.Dialog,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.locked = lock.Locked()
	m.unsubscribe = lock.Subscribe(func(locked bool) {
		m.locked = locked
	})

	mopts := []modal.Option{
		modal.WithScrollLock(lock),
		modal.WithFocusManager(mgr),
		modal.WithTranslator(opts.Translator),
		modal.WithObserver(opts.Observer),
		modal.WithAllocator(opts.Allocator),
		modal.WithStyles(styles),
		modal.WithSize(m.width, m.dialogHeight()),
	}
	items := make([]uistate.Item, 0, len(DialogIDs()))
	for _, d := range m.buildDialogs() {
		var cmd tea.Cmd
		d.modal, cmd = modal.New(d.props(false), mopts...)
		m.mountCmds = append(m.mountCmds, cmd)
		m.dialogs[d.id] = d
		m.order = append(m.order, d.id)
		items = append(items, uistate.Item{ID: d.id, Label: d.label, Description: d.description})
	}
	m.page = uistate.NewPage(pageID, pageTitle, items)
	m.focus.Register(pageID, nil)
	m.focus.Focus(pageID)

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{}, m.mountCmds...)
	m.mountCmds = nil
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.startDialog != "" {
		cmds = append(cmds, m.openDialog(m.startDialog))
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
		return m, m.finishUpdate(cmds)
	}
	if d := m.activeDialog(); d != nil {
		if cmd := d.modal.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Close unmounts every dialog and drops the lock subscription.
func (m *Model) Close() {
	for _, id := range m.order {
		m.dialogs[id].modal.Unmount()
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(dialogClosedMsg{}):   m.handleDialogClosedMsg,
		reflect.TypeOf(confirmResultMsg{}):  m.handleConfirmResultMsg,
		reflect.TypeOf(renameResultMsg{}):   m.handleRenameResultMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
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
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) activeDialog() *dialog {
	if m.active == "" {
		return nil
	}
	return m.dialogs[m.active]
}

// openDialog closes whatever is open and opens id. Unknown IDs set an error.
func (m *Model) openDialog(id string) tea.Cmd {
	d, ok := m.dialogs[id]
	if !ok {
		m.errMsg = "unknown dialog " + id
		return nil
	}
	var cmds []tea.Cmd
	if m.active != "" && m.active != id {
		cmds = append(cmds, m.closeDialog(m.active, "replaced"))
	}
	if d.reset != nil {
		d.reset()
	}
	m.active = id
	m.errMsg = ""
	cmds = append(cmds, d.modal.SetProps(d.props(true)))
	return tea.Batch(cmds...)
}

func (m *Model) closeDialog(id, reason string) tea.Cmd {
	d, ok := m.dialogs[id]
	if !ok || !d.modal.Open() {
		return nil
	}
	events.UI.DialogClosed(id, reason)
	if m.active == id {
		m.active = ""
	}
	return d.modal.SetProps(d.props(false))
}

func (m *Model) handleDialogClosedMsg(msg tea.Msg) tea.Cmd {
	closed := msg.(dialogClosedMsg)
	return m.closeDialog(closed.id, closed.reason)
}

func (m *Model) handleConfirmResultMsg(msg tea.Msg) tea.Cmd {
	return m.runConfirm(msg.(confirmResultMsg).accepted)
}

func (m *Model) handleRenameResultMsg(msg tea.Msg) tea.Cmd {
	return m.runRename(msg.(renameResultMsg).name)
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result := msg.(actionResultMsg)
	if result.err != nil {
		events.Action.Error(result.err)
		m.errMsg = result.err.Error()
		return nil
	}
	events.Action.Success(result.info)
	m.errMsg = ""
	m.setInfo(result.info)
	return nil
}
