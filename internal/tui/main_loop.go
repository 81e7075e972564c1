package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type editStage int

const (
	editStageNone editStage = iota
	editStageSection
	editStageMeta
	editStageCompany
	editStageClient
	editStageItems
	editStageItemFields
	editStageTerms
)

var editSections = []string{
	"Quote details",
	"Company",
	"Client",
	"Line items",
	"Terms",
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	currency string

	invoices []models.Invoice
	idx      int
	loading  bool
	status   string
	errMsg   string
	detail   bool

	confirmDelete bool
	deleteTarget  models.Invoice

	session    *service.EditorSession
	editStage  editStage
	sectionIdx int
	inputs     []textinput.Model
	focus      int
	warrArea   textarea.Model
	itemIdx    int
	itemID     string
	editErr    string
	saving     bool

	exporting bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, currency string) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		currency: currency,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadInvoices()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		m.invoices = msg.invoices
		if m.idx >= len(m.invoices) {
			m.idx = len(m.invoices) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case newInvoiceMsg:
		m.openEditor(msg.invoice)
		return m, nil
	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			// The editor stays open so nothing typed is lost.
			m.editErr = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.closeEditor()
		m.status = fmt.Sprintf("Quote %s saved", msg.invoice.QuoteNumber)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadInvoices()
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Quote deleted"
		m.errMsg = ""
		m.detail = false
		m.loading = true
		return m, m.cmdLoadInvoices()
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.status = "PDF saved to " + msg.path
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editStage != editStageNone {
			return m.updateEditor(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.confirmDelete {
		return m.updateConfirmDelete(keyMsg)
	}

	if m.editStage != editStageNone {
		return m.updateEditor(msg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

// ── list screen ──────────────────────────────────────────────────────────────

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.invoices)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.status = ""
		m.errMsg = ""
		return m, m.cmdNewInvoice()
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No quotes"
			return m, nil
		}
		m.detail = true
	case key.Matches(keyMsg, keys.edit):
		inv, ok := m.current()
		if !ok {
			m.status = "No quotes"
			return m, nil
		}
		m.openEditor(inv)
	case key.Matches(keyMsg, keys.delete):
		inv, ok := m.current()
		if !ok {
			m.status = "No quotes"
			return m, nil
		}
		m.confirmDelete = true
		m.deleteTarget = inv
	case key.Matches(keyMsg, keys.export):
		inv, ok := m.current()
		if !ok {
			m.status = "No quotes"
			return m, nil
		}
		return m.startExport(inv)
	case key.Matches(keyMsg, keys.copy):
		inv, ok := m.current()
		if !ok {
			m.status = "No quotes"
			return m, nil
		}
		return m.copyQuoteNumber(inv)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inv, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.detail = false
	case key.Matches(keyMsg, keys.edit):
		m.detail = false
		m.openEditor(inv)
	case key.Matches(keyMsg, keys.delete):
		m.confirmDelete = true
		m.deleteTarget = inv
	case key.Matches(keyMsg, keys.export):
		return m.startExport(inv)
	case key.Matches(keyMsg, keys.copy):
		return m.copyQuoteNumber(inv)
	}

	return m, nil
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmDelete = false
		return m, m.cmdDelete(m.deleteTarget.ID)
	case key.Matches(keyMsg, keys.no):
		m.confirmDelete = false
		m.status = "Delete cancelled"
	}
	return m, nil
}

func (m mainLoopModel) startExport(inv models.Invoice) (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	m.exporting = true
	m.status = "Exporting PDF..."
	m.errMsg = ""
	return m, m.cmdExport(inv)
}

func (m mainLoopModel) copyQuoteNumber(inv models.Invoice) (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(inv.QuoteNumber); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.status = "Quote number copied"
	return m, nil
}

// ── editor ───────────────────────────────────────────────────────────────────

func (m *mainLoopModel) openEditor(inv models.Invoice) {
	m.session = service.NewEditorSession(m.services.InvoiceService, inv)
	m.editStage = editStageSection
	m.sectionIdx = 0
	m.itemIdx = 0
	m.editErr = ""
	m.saving = false
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) closeEditor() {
	m.session = nil
	m.editStage = editStageNone
	m.inputs = nil
	m.focus = 0
	m.itemIdx = 0
	m.itemID = ""
	m.editErr = ""
	m.saving = false
}

func (m mainLoopModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.editStage {
	case editStageSection:
		return m.updateSection(msg)
	case editStageMeta, editStageCompany, editStageClient, editStageItemFields:
		return m.updateInputs(msg)
	case editStageItems:
		return m.updateItems(msg)
	case editStageTerms:
		return m.updateTerms(msg)
	default:
		return m, nil
	}
}

func (m mainLoopModel) updateSection(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		dirty := m.session.Dirty()
		m.closeEditor()
		if dirty {
			m.status = "Changes discarded"
		}
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.sectionIdx > 0 {
			m.sectionIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.sectionIdx < len(editSections)-1 {
			m.sectionIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.enterSection()
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.editErr = ""
		return m, m.cmdSave(m.session)
	default:
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
			m.sectionIdx = int(s[0] - '1')
			m.enterSection()
		}
	}

	return m, nil
}

func (m *mainLoopModel) enterSection() {
	m.editErr = ""
	switch m.sectionIdx {
	case 0:
		m.editStage = editStageMeta
		m.initMetaInputs()
	case 1:
		m.editStage = editStageCompany
		m.initCompanyInputs()
	case 2:
		m.editStage = editStageClient
		m.initClientInputs()
	case 3:
		m.editStage = editStageItems
		m.itemIdx = 0
	case 4:
		m.editStage = editStageTerms
		m.initTermsInputs()
	}
}

func newInput(placeholder, value string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	in.Width = width
	return in
}

func (m *mainLoopModel) setInputs(inputs ...textinput.Model) {
	inputs[0].Focus()
	m.inputs = inputs
	m.focus = 0
}

func (m *mainLoopModel) initMetaInputs() {
	inv := m.session.Invoice()
	m.setInputs(
		newInput("00001", inv.QuoteNumber, 40),
		newInput("2026-01-31", inv.Date, 40),
		newInput("DDP", inv.Basis, 40),
		newInput("30", strconv.Itoa(inv.ValidityDays), 40),
	)
}

func (m *mainLoopModel) initCompanyInputs() {
	info := m.session.Invoice().CompanyInfo
	m.setInputs(
		newInput("Company name", info.Name, 40),
		newInput("Address", info.Address, 40),
		newInput("Email", info.Email1, 40),
		newInput("Second email (optional)", info.Email2, 40),
		newInput("Phone", info.Phone1, 40),
		newInput("Second phone (optional)", info.Phone2, 40),
	)
}

func (m *mainLoopModel) initClientInputs() {
	info := m.session.Invoice().ClientInfo
	m.setInputs(
		newInput("Client name", info.Name, 40),
		newInput("Address", info.Address, 40),
		newInput("Email", info.Email, 40),
		newInput("Phone", info.Phone, 40),
	)
}

func (m *mainLoopModel) initItemInputs(item models.LineItem) {
	m.itemID = item.ID
	m.setInputs(
		newInput("Item name", item.ItemName, 40),
		newInput("Product code", item.ProductCode, 40),
		newInput("Specifications", item.Specifications, 40),
		newInput("Advantages", item.Advantages, 40),
		newInput("Packing details", item.PackingDetails, 40),
		newInput("Unit price", formatPrice(item.UnitPrice), 40),
		newInput("Quantity", strconv.Itoa(item.Quantity), 40),
		newInput("Image path or URL (optional)", item.ReferImage, 40),
	)
}

func (m *mainLoopModel) initTermsInputs() {
	inv := m.session.Invoice()
	m.setInputs(
		newInput("MOQ: 1 court", inv.Notes, 54),
		newInput("Certifications", inv.Certifications, 54),
		newInput("25-30 days", inv.LeadTime, 54),
		newInput("Payment terms", inv.PaymentTerms, 54),
	)

	ta := textarea.New()
	ta.Placeholder = "Warranty"
	ta.SetValue(inv.Warranty)
	ta.SetWidth(54)
	ta.SetHeight(4)
	m.warrArea = ta
}

// updateInputs drives the plain text-input stages: quote details, company,
// client and line-item fields. Enter commits the whole form back into the
// editing session.
func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.leaveInputStage()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.focusInput((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusInput((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.commitInputStage()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *mainLoopModel) focusInput(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m *mainLoopModel) leaveInputStage() {
	if m.editStage == editStageItemFields {
		m.editStage = editStageItems
	} else {
		m.editStage = editStageSection
	}
	m.inputs = nil
	m.focus = 0
	m.editErr = ""
}

func (m *mainLoopModel) commitInputStage() {
	switch m.editStage {
	case editStageMeta:
		m.session.SetQuoteNumber(strings.TrimSpace(m.inputs[0].Value()))
		m.session.SetDate(strings.TrimSpace(m.inputs[1].Value()))
		m.session.SetBasis(strings.TrimSpace(m.inputs[2].Value()))
		m.session.SetValidityDays(strings.TrimSpace(m.inputs[3].Value()))
	case editStageCompany:
		m.session.SetCompanyInfo(models.CompanyInfo{
			Name:    strings.TrimSpace(m.inputs[0].Value()),
			Address: strings.TrimSpace(m.inputs[1].Value()),
			Email1:  strings.TrimSpace(m.inputs[2].Value()),
			Email2:  strings.TrimSpace(m.inputs[3].Value()),
			Phone1:  strings.TrimSpace(m.inputs[4].Value()),
			Phone2:  strings.TrimSpace(m.inputs[5].Value()),
		})
	case editStageClient:
		m.session.SetClientInfo(models.ClientInfo{
			Name:    strings.TrimSpace(m.inputs[0].Value()),
			Address: strings.TrimSpace(m.inputs[1].Value()),
			Email:   strings.TrimSpace(m.inputs[2].Value()),
			Phone:   strings.TrimSpace(m.inputs[3].Value()),
		})
	case editStageItemFields:
		fields := []service.LineItemField{
			service.LineItemName,
			service.LineItemProductCode,
			service.LineItemSpecifications,
			service.LineItemAdvantages,
			service.LineItemPackingDetails,
			service.LineItemUnitPrice,
			service.LineItemQuantity,
			service.LineItemReferImage,
		}
		for i, field := range fields {
			m.session.SetLineItemField(m.itemID, field, strings.TrimSpace(m.inputs[i].Value()))
		}
	}

	m.leaveInputStage()
}

func (m mainLoopModel) updateItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.session.Invoice().LineItems

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.editStage = editStageSection
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.itemIdx < len(items)-1 {
			m.itemIdx++
		}
	case key.Matches(keyMsg, keys.addItem):
		m.session.AddLineItem()
		m.itemIdx = len(m.session.Invoice().LineItems) - 1
	case key.Matches(keyMsg, keys.delete):
		if m.itemIdx >= 0 && m.itemIdx < len(items) {
			m.session.RemoveLineItem(items[m.itemIdx].ID)
			if remaining := len(m.session.Invoice().LineItems); m.itemIdx >= remaining {
				m.itemIdx = remaining - 1
			}
			if m.itemIdx < 0 {
				m.itemIdx = 0
			}
		}
	case key.Matches(keyMsg, keys.enter):
		if m.itemIdx >= 0 && m.itemIdx < len(items) {
			m.editStage = editStageItemFields
			m.initItemInputs(items[m.itemIdx])
		}
	}

	return m, nil
}

func (m mainLoopModel) updateTerms(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Focus positions 0..3 are the text inputs, 4 is the warranty textarea.
	const warrFocus = 4

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.warrArea.Blur()
			m.leaveInputStage()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.cycleTermsFocus(1, warrFocus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.cycleTermsFocus(-1, warrFocus)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			m.session.SetNotes(strings.TrimSpace(m.inputs[0].Value()))
			m.session.SetCertifications(strings.TrimSpace(m.inputs[1].Value()))
			m.session.SetLeadTime(strings.TrimSpace(m.inputs[2].Value()))
			m.session.SetPaymentTerms(strings.TrimSpace(m.inputs[3].Value()))
			m.session.SetWarranty(strings.TrimSpace(m.warrArea.Value()))
			m.warrArea.Blur()
			m.leaveInputStage()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus != warrFocus {
				m.cycleTermsFocus(1, warrFocus)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == warrFocus {
		m.warrArea, cmd = m.warrArea.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) cycleTermsFocus(delta, warrFocus int) {
	if m.focus == warrFocus {
		m.warrArea.Blur()
	} else {
		m.inputs[m.focus].Blur()
	}

	total := len(m.inputs) + 1
	m.focus = (m.focus + delta + total) % total

	if m.focus == warrFocus {
		m.warrArea.Focus()
	} else {
		m.inputs[m.focus].Focus()
	}
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) current() (models.Invoice, bool) {
	if len(m.invoices) == 0 || m.idx < 0 || m.idx >= len(m.invoices) {
		return models.Invoice{}, false
	}
	return m.invoices[m.idx], true
}

func (m mainLoopModel) cmdLoadInvoices() tea.Cmd {
	ctx := m.ctx
	svc := m.services.InvoiceService

	return func() tea.Msg {
		return listLoadedMsg{invoices: svc.List(ctx)}
	}
}

func (m mainLoopModel) cmdNewInvoice() tea.Cmd {
	ctx := m.ctx
	svc := m.services.InvoiceService

	return func() tea.Msg {
		return newInvoiceMsg{invoice: svc.NewInvoice(ctx)}
	}
}

func (m mainLoopModel) cmdSave(session *service.EditorSession) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		saved, err := session.Save(ctx)
		return saveDoneMsg{invoice: saved, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.InvoiceService

	return func() tea.Msg {
		return deleteDoneMsg{err: svc.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdExport(inv models.Invoice) tea.Cmd {
	svc := m.services.ExportService

	return func() tea.Msg {
		path, err := svc.ExportPDF(inv)
		return exportDoneMsg{path: path, err: err}
	}
}

// ── views ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	return appStyle.Render(m.viewBody())
}

func (m mainLoopModel) viewBody() string {
	if m.confirmDelete {
		label := m.deleteTarget.QuoteNumber
		if m.deleteTarget.ClientInfo.Name != "" {
			label += " / " + m.deleteTarget.ClientInfo.Name
		}
		return confirmModel{message: label}.View()
	}

	switch m.editStage {
	case editStageSection:
		return m.viewSection()
	case editStageMeta:
		return m.viewInputs("EDIT: QUOTE DETAILS", []string{"Quote No.", "Date", "Basis", "Valid (days)"})
	case editStageCompany:
		return m.viewInputs("EDIT: COMPANY", []string{"Name", "Address", "Email", "Email 2", "Phone", "Phone 2"})
	case editStageClient:
		return m.viewInputs("EDIT: CLIENT", []string{"Name", "Address", "Email", "Phone"})
	case editStageItems:
		return m.viewItems()
	case editStageItemFields:
		return m.viewInputs("EDIT: LINE ITEM", []string{"Item", "Code", "Specs", "Advantages", "Packing", "Unit price", "Quantity", "Image"})
	case editStageTerms:
		return m.viewTerms()
	}

	if m.detail {
		inv, ok := m.current()
		if !ok {
			return renderPage("QUOTE", "Quote not found", "esc: back")
		}
		return m.viewDetail(inv)
	}

	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := ""
	hotKeys := "n: new │ enter: open │ e: edit │ p: pdf │ c: copy no. │ ctrl+d: delete │ ↑/↓: nav │ q: quit"

	if m.loading {
		return renderPage("QUOTES", "Loading...", hotKeys)
	}

	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}

	if len(m.invoices) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No quotes yet. Press n to create one.\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "Quote No. │ Client                   │ Date       │ Total\n"
		out += "──────────┼──────────────────────────┼────────────┼────────────\n"
		for i, inv := range m.invoices {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-8s│ %-24s │ %-10s │ %s\n",
				cursor,
				fitText(inv.QuoteNumber, 8),
				fitText(valueOrDash(inv.ClientInfo.Name), 24),
				fitText(valueOrDash(inv.Date), 10),
				money(m.currency, inv.Total),
			)
		}
	}

	return renderPage("QUOTES", strings.TrimRight(out, "\n"), hotKeys)
}

func (m mainLoopModel) viewDetail(inv models.Invoice) string {
	var b strings.Builder

	b.WriteString("[ QUOTE ]\n")
	b.WriteString("Quote No.   : " + inv.QuoteNumber + "\n")
	b.WriteString("Date        : " + valueOrDash(inv.Date) + "\n")
	b.WriteString("Basis       : " + valueOrDash(inv.Basis) + "\n")
	b.WriteString(fmt.Sprintf("Validity    : %d days\n", inv.ValidityDays))
	b.WriteString("\n[ BILLED TO ]\n")
	b.WriteString("Client      : " + valueOrDash(inv.ClientInfo.Name) + "\n")
	if inv.ClientInfo.Address != "" {
		b.WriteString("Address     : " + strings.ReplaceAll(inv.ClientInfo.Address, "\n", ", ") + "\n")
	}
	if inv.ClientInfo.Email != "" {
		b.WriteString("Email       : " + inv.ClientInfo.Email + "\n")
	}
	if inv.ClientInfo.Phone != "" {
		b.WriteString("Phone       : " + inv.ClientInfo.Phone + "\n")
	}

	b.WriteString("\n[ ITEMS ]\n")
	if len(inv.LineItems) == 0 {
		b.WriteString("(no items)\n")
	} else {
		for i, item := range inv.LineItems {
			b.WriteString(fmt.Sprintf(
				"%d. %-24s %3d x %-10s = %s\n",
				i+1,
				fitText(valueOrDash(item.ItemName), 24),
				item.Quantity,
				money(m.currency, item.UnitPrice),
				money(m.currency, item.Amount),
			))
		}
	}

	b.WriteString("\n[ TOTALS ]\n")
	b.WriteString("Subtotal    : " + money(m.currency, inv.Subtotal) + "\n")
	b.WriteString("TOTAL       : " + money(m.currency, inv.Total) + "\n")

	b.WriteString("\n[ TERMS ]\n")
	if inv.Notes != "" {
		b.WriteString(inv.Notes + "\n")
	}
	if inv.LeadTime != "" {
		b.WriteString("Lead time   : " + inv.LeadTime + "\n")
	}
	if inv.PaymentTerms != "" {
		b.WriteString("Payment     : " + inv.PaymentTerms + "\n")
	}
	b.WriteString(fmt.Sprintf("Valid for %d days from date of issue.\n", inv.ValidityDays))

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("\nStatus: " + m.status + "\n")
	}

	title := "QUOTE " + inv.QuoteNumber
	hotKeys := "e: edit │ p: pdf │ c: copy no. │ ctrl+d: delete │ esc: back"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewSection() string {
	inv := m.session.Invoice()

	out := ""
	for i, section := range editSections {
		cursor := " "
		if i == m.sectionIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, section)
	}

	out += "\nTotal       : " + money(m.currency, inv.Total) + "\n"
	if m.session.Dirty() {
		out += "Unsaved changes\n"
	}
	if m.saving {
		out += "Saving...\n"
	}
	if m.editErr != "" {
		out += "\nError: " + m.editErr + "\n"
	}

	title := "EDIT QUOTE " + inv.QuoteNumber
	hotKeys := "1-5/enter: section │ ctrl+s: save │ ↑/↓: nav │ esc: close"
	return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
}

func (m mainLoopModel) viewInputs(title string, labels []string) string {
	out := ""
	for i, label := range labels {
		out += fmt.Sprintf("%-12s: [ %s ]\n", label, m.inputs[i].View())
	}
	if m.editErr != "" {
		out += "\nError: " + m.editErr + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: next field │ shift+tab: prev field │ enter: apply │ esc: back")
}

func (m mainLoopModel) viewItems() string {
	inv := m.session.Invoice()

	out := ""
	if len(inv.LineItems) == 0 {
		out += "No items. Press a to add one.\n"
	} else {
		out += " #  │ Item                     │ Qty │ Unit price │ Amount\n"
		out += "────┼──────────────────────────┼─────┼────────────┼────────────\n"
		for i, item := range inv.LineItems {
			cursor := " "
			if i == m.itemIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-2d│ %-24s │ %3d │ %-10s │ %s\n",
				cursor,
				i+1,
				fitText(valueOrDash(item.ItemName), 24),
				item.Quantity,
				money(m.currency, item.UnitPrice),
				money(m.currency, item.Amount),
			)
		}
	}

	out += "\nSubtotal    : " + money(m.currency, inv.Subtotal) + "\n"
	out += "TOTAL       : " + money(m.currency, inv.Total) + "\n"

	return renderPage("EDIT: LINE ITEMS", strings.TrimRight(out, "\n"), "a: add │ enter: edit │ ctrl+d: remove │ ↑/↓: nav │ esc: back")
}

func (m mainLoopModel) viewTerms() string {
	out := "Notes       : [ " + m.inputs[0].View() + " ]\n"
	out += "Certs       : [ " + m.inputs[1].View() + " ]\n"
	out += "Lead time   : [ " + m.inputs[2].View() + " ]\n"
	out += "Payment     : [ " + m.inputs[3].View() + " ]\n"
	out += "Warranty:\n"
	out += m.warrArea.View()

	return renderPage("EDIT: TERMS", strings.TrimRight(out, "\n"), "tab: next field │ ctrl+s: apply │ esc: back")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
