package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/nif"
)

// Menu options
const (
	optionInsert = "1"
	optionSearch = "2"
	optionShow   = "3"
	optionStat   = "4"
	optionExit   = "5"
)

// Menu - Interactive loop reading commands from an input and writing results to an output
type Menu struct {
	table *hashtable.HashTable[nif.Nif]
	in    *bufio.Scanner
	out   io.Writer
	title *color.Color
	ok    *color.Color
	fail  *color.Color
}

// NewMenu - Returns a pointer to a new Menu working on table
func NewMenu(table *hashtable.HashTable[nif.Nif], in io.Reader, out io.Writer, noColor bool) *Menu {
	m := &Menu{
		table: table,
		in:    bufio.NewScanner(in),
		out:   out,
		title: color.New(color.FgBlue, color.Bold),
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
	}

	if noColor {
		m.title.DisableColor()
		m.ok.DisableColor()
		m.fail.DisableColor()
	}

	return m
}

// Run - Shows the menu and executes options until the exit option is chosen or the input is exhausted
func (M *Menu) Run() (err error) {
	for {
		M.showMenu()

		option, more := M.prompt("Choose an option: ")
		if !more {
			return M.in.Err()
		}

		switch option {
		case optionInsert:
			M.insert()
		case optionSearch:
			M.search()
		case optionShow:
			err = M.table.Write(M.out)
			if err != nil {
				return
			}
		case optionStat:
			M.stat()
		case optionExit:
			_, _ = fmt.Fprintln(M.out, "Exiting")
			return
		default:
			_, _ = M.fail.Fprintf(M.out, "Unknown option %q\n", option)
		}
	}
}

// showMenu - Writes the list of options
func (M *Menu) showMenu() {
	_, _ = M.title.Fprintln(M.out, "\n=============== MENU ===============")
	_, _ = fmt.Fprintln(M.out, "  1. Insert NIF")
	_, _ = fmt.Fprintln(M.out, "  2. Search NIF")
	_, _ = fmt.Fprintln(M.out, "  3. Show table")
	_, _ = fmt.Fprintln(M.out, "  4. Statistics")
	_, _ = fmt.Fprintln(M.out, "  5. Exit")
	_, _ = M.title.Fprintln(M.out, "====================================")
}

// prompt - Writes text and returns the next input line, more is false when the input is exhausted
func (M *Menu) prompt(text string) (line string, more bool) {
	_, _ = fmt.Fprint(M.out, text)
	if !M.in.Scan() {
		return
	}

	return strings.TrimSpace(M.in.Text()), true
}

// readNif - Prompts for a NIF, reports invalid input and returns false if none was read
func (M *Menu) readNif(text string) (key nif.Nif, ok bool) {
	line, more := M.prompt(text)
	if !more {
		return
	}

	key, err := nif.Parse(line)
	if err != nil {
		_, _ = M.fail.Fprintln(M.out, err)
		return
	}

	return key, true
}

func (M *Menu) insert() {
	key, ok := M.readNif("NIF to insert: ")
	if !ok {
		return
	}

	err := M.table.Set(key)
	switch {
	case err == nil:
		_, _ = M.ok.Fprintf(M.out, "NIF %v inserted\n", key)
	case errors.Is(err, crt.DuplicateKey{}):
		_, _ = M.fail.Fprintf(M.out, "NIF %v is already in the table\n", key)
	case errors.Is(err, crt.TableFull{}):
		_, _ = M.fail.Fprintf(M.out, "NIF %v not inserted, the table is full\n", key)
	default:
		_, _ = M.fail.Fprintf(M.out, "NIF %v not inserted: %s\n", key, err)
	}
}

func (M *Menu) search() {
	key, ok := M.readNif("NIF to search: ")
	if !ok {
		return
	}

	if M.table.Search(key) {
		_, _ = M.ok.Fprintf(M.out, "NIF %v found\n", key)
	} else {
		_, _ = M.fail.Fprintf(M.out, "NIF %v not found\n", key)
	}
}

func (M *Menu) stat() {
	info := M.table.Parameters()
	stat := M.table.Stat(false)

	_, _ = fmt.Fprintf(M.out, "Technique:      %s\n", crt.TechniqueName(info.Technique))
	_, _ = fmt.Fprintf(M.out, "Buckets:        %d\n", info.TableSize)
	_, _ = fmt.Fprintf(M.out, "Keys:           %d\n", stat.Keys)
	_, _ = fmt.Fprintf(M.out, "Primary keys:   %d\n", stat.PrimaryKeys)
	_, _ = fmt.Fprintf(M.out, "Relocated keys: %d\n", stat.RelocatedKeys)
	_, _ = fmt.Fprintf(M.out, "Full buckets:   %d\n", stat.FullBuckets)
	if info.Capacity > 0 {
		_, _ = fmt.Fprintf(M.out, "Load factor:    %.2f\n", float64(stat.Keys)/float64(info.Capacity))
	}
}
