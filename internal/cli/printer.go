package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"task-tracker/internal/domain"
)

// Output formats understood by Printer
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const timeDisplayFormat = "2006-01-02 15:04:05"

// Printer renders tasks as an aligned table or as JSON
type Printer struct {
	out    io.Writer
	format string
}

// NewPrinter creates a printer; unknown formats fall back to table
func NewPrinter(out io.Writer, format string) *Printer {
	if format != FormatJSON {
		format = FormatTable
	}
	return &Printer{out: out, format: format}
}

// Format returns the active output format
func (p *Printer) Format() string {
	return p.format
}

// PrintTasks prints one row per task in the order given
func (p *Printer) PrintTasks(tasks []*domain.Task) error {
	if p.format == FormatJSON {
		if tasks == nil {
			tasks = []*domain.Task{}
		}
		return p.printJSON(tasks)
	}

	if len(tasks) == 0 {
		_, err := fmt.Fprintln(p.out, "No tasks found")
		return err
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", task.ID, task.Status(), formatTime(task.CreatedAt), task.Title)
	}
	return w.Flush()
}

// PrintTask prints a single task with all fields
func (p *Printer) PrintTask(task *domain.Task) error {
	if p.format == FormatJSON {
		return p.printJSON(task)
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", task.ID)
	fmt.Fprintf(w, "Title:\t%s\n", task.Title)
	fmt.Fprintf(w, "Description:\t%s\n", task.Description)
	fmt.Fprintf(w, "Status:\t%s\n", task.Status())
	fmt.Fprintf(w, "Created:\t%s\n", formatTime(task.CreatedAt))
	return w.Flush()
}

// PrintMessage prints a status line; JSON mode wraps it in an object
func (p *Printer) PrintMessage(message, id string) error {
	if p.format == FormatJSON {
		return p.printJSON(map[string]string{"message": message, "id": id})
	}
	_, err := fmt.Fprintf(p.out, "%s: %s\n", message, id)
	return err
}

func (p *Printer) printJSON(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func formatTime(t time.Time) string {
	return t.Local().Format(timeDisplayFormat)
}
