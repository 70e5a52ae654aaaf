package console

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// REPL runs the interactive prompt loop: one command per line, an
// optional JSON parameter blob after the method name.
type REPL struct {
	reader *bufio.Scanner
	writer io.Writer
	server *Server
	prompt string
	logger *zap.Logger
}

func NewREPL(r io.Reader, w io.Writer, server *Server, prompt string, logger *zap.Logger) *REPL {
	return &REPL{
		reader: bufio.NewScanner(r),
		writer: w,
		server: server,
		prompt: prompt,
		logger: logger,
	}
}

// Run reads commands until EOF or an explicit quit.
func (r *REPL) Run() error {
	fmt.Fprintln(r.writer, "ledgerdesk console")
	fmt.Fprintln(r.writer, "Type 'help' for available commands or 'quit' to exit")

	for {
		fmt.Fprint(r.writer, r.prompt)
		if !r.reader.Scan() {
			if err := r.reader.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		input := strings.TrimSpace(r.reader.Text())
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" {
			fmt.Fprintln(r.writer, "Goodbye!")
			return nil
		}

		if input == "help" {
			r.printHelp()
			continue
		}

		r.dispatch(input)
	}
}

func (r *REPL) dispatch(input string) {
	method, rest, _ := strings.Cut(input, " ")

	var params json.RawMessage
	if rest = strings.TrimSpace(rest); rest != "" {
		if err := json.Unmarshal([]byte(rest), &params); err != nil {
			fmt.Fprintf(r.writer, "Error: invalid JSON parameters: %v\n", err)
			return
		}
	}

	result, err := r.server.HandleCommand(method, params)
	if err != nil {
		r.logger.Warn("command failed", zap.String("method", method), zap.Error(err))
		fmt.Fprintf(r.writer, "Error: %v\n", err)
		return
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(r.writer, "Error formatting result: %v\n", err)
		return
	}

	fmt.Fprintln(r.writer, string(output))
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.writer, "Available commands:")
	fmt.Fprintln(r.writer, "  help                          - Show this help")
	fmt.Fprintln(r.writer, "  quit/exit                     - Exit the application")
	fmt.Fprintln(r.writer, "")
	fmt.Fprintln(r.writer, "Ledger commands (JSON parameters):")
	fmt.Fprintln(r.writer, "  Enterprise commands:")
	fmt.Fprintln(r.writer, "    ledger.enterprise.create    - Create an enterprise")
	fmt.Fprintln(r.writer, "    ledger.enterprise.get       - Get an enterprise")
	fmt.Fprintln(r.writer, "    ledger.enterprise.list      - List enterprises")
	fmt.Fprintln(r.writer, "    ledger.enterprise.update    - Update an enterprise")
	fmt.Fprintln(r.writer, "    ledger.enterprise.delete    - Delete an enterprise")
	fmt.Fprintln(r.writer, "    ledger.enterprise.validate  - Check an enterprise against the business rules")
	fmt.Fprintln(r.writer, "")
	fmt.Fprintln(r.writer, "  Widget commands:")
	fmt.Fprintln(r.writer, "    ledger.widget.create        - Create a widget")
	fmt.Fprintln(r.writer, "    ledger.widget.get           - Get a widget")
	fmt.Fprintln(r.writer, "    ledger.widget.list          - List widgets")
	fmt.Fprintln(r.writer, "    ledger.widget.update        - Update a widget")
	fmt.Fprintln(r.writer, "    ledger.widget.delete        - Delete a widget")
	fmt.Fprintln(r.writer, "    ledger.widget.validate      - Check a widget against the business rules")
	fmt.Fprintln(r.writer, "")
	fmt.Fprintln(r.writer, "  Picker commands:")
	fmt.Fprintln(r.writer, "    ledger.widget.pick          - Advance the round-robin picker")
	fmt.Fprintln(r.writer, "    ledger.widget.picked        - Show the currently picked widget")
	fmt.Fprintln(r.writer, "")
	fmt.Fprintln(r.writer, "  Search:")
	fmt.Fprintln(r.writer, "    ledger.catalog.search       - Search widgets and enterprises by keyword")
	fmt.Fprintln(r.writer, "")
	fmt.Fprintln(r.writer, "Example usage:")
	fmt.Fprintln(r.writer, `  ledger.enterprise.create {"name":"Northwind Consulting","hourlyRate":"125.50","hoursBilled":40}`)
	fmt.Fprintln(r.writer, `  ledger.widget.create {"name":"Anvil","sku":"FRG-100","unitPrice":"19.99","quantity":3}`)
	fmt.Fprintln(r.writer, `  ledger.widget.pick`)
	fmt.Fprintln(r.writer, `  ledger.catalog.search {"query":"anvil","limit":5}`)
}
