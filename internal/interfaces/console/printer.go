package console

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	app "github.com/mohammadpnp/user-accounts/internal/application/account"
	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
)

// Printer writes tour progress and query results as plain text and tables.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Step(message string) {
	_, _ = fmt.Fprintf(p.w, "==> %s\n", message)
}

func (p *Printer) Schema(info domain.SchemaInfo) {
	p.heading("schema")

	t := p.newTable()
	t.AppendHeader(table.Row{"Table", "Exists"})
	for _, name := range sortedKeys(info.Present) {
		t.AppendRow(table.Row{name, info.Present[name]})
	}
	t.Render()

	_, _ = fmt.Fprintf(p.w, "tables: %s\n", strings.Join(info.Tables, ", "))
	_, _ = fmt.Fprintf(p.w, "default schema: %s\n", info.DefaultSchema)
}

func (p *Printer) Users(title string, users []domain.User) {
	p.heading(title)
	if len(users) == 0 {
		_, _ = fmt.Fprintln(p.w, "(0 rows)")
		return
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"ID", "Name", "Full name", "Addresses"})
	for _, user := range users {
		t.AppendRow(table.Row{user.ID, user.Name, user.FullName, len(user.Addresses)})
	}
	t.Render()
	_, _ = fmt.Fprintf(p.w, "(%d rows)\n", len(users))
}

func (p *Printer) Addresses(title string, addresses []domain.Address) {
	p.heading(title)
	if len(addresses) == 0 {
		_, _ = fmt.Fprintln(p.w, "(0 rows)")
		return
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"ID", "Email address", "User ID"})
	for _, address := range addresses {
		t.AppendRow(table.Row{address.ID, address.EmailAddress, address.UserID})
	}
	t.Render()
	_, _ = fmt.Fprintf(p.w, "(%d rows)\n", len(addresses))
}

func (p *Printer) UserEmails(title string, rows []domain.UserEmail) {
	p.heading(title)
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(p.w, "(0 rows)")
		return
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"Full name", "Email address"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.FullName, row.EmailAddress})
	}
	t.Render()
	_, _ = fmt.Fprintf(p.w, "(%d rows)\n", len(rows))
}

func (p *Printer) Count(title string, count int64) {
	_, _ = fmt.Fprintf(p.w, "==> %s: %d\n", title, count)
}

// UserDetail prints one user followed by its addresses.
func (p *Printer) UserDetail(user app.GetUserByIDOutput) {
	p.heading(fmt.Sprintf("user %d", user.ID))
	_, _ = fmt.Fprintf(p.w, "%s (%s)\n", user.FullName, user.Name)
	for _, address := range user.Addresses {
		_, _ = fmt.Fprintf(p.w, "  - %s\n", address.EmailAddress)
	}
}

func (p *Printer) heading(title string) {
	_, _ = fmt.Fprintf(p.w, "\n==> %s\n", title)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	return t
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
